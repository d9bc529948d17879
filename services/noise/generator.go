package noise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

//go:generate mockgen -source=generator.go -destination=../../internal/testmocks/mocknoise/mock_source.go -package=mocknoise

// ErrUnknownKind is returned by NewSource for an unsupported noise backend.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kind selects a noise backend.
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Source evaluates continuous 2D coherent noise in approximately [0, 1].
// Implementations must be pure functions of their inputs.
type Source interface {
	Noise2D(x, y float64) float64
}

// PerlinGenerator implements Source using Perlin noise.
type PerlinGenerator struct {
	noise *perlin.Perlin
	seed  int64
}

// NewPerlinGenerator creates a new Perlin noise source with the given seed.
func NewPerlinGenerator(seed int64) *PerlinGenerator {
	// alpha=2, beta=2, n=3 give good terrain-like noise
	return &PerlinGenerator{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		seed:  seed,
	}
}

// Noise2D returns the Perlin value at (x, y) remapped from [-1, 1] to [0, 1].
func (g *PerlinGenerator) Noise2D(x, y float64) float64 {
	return unit((g.noise.Noise2D(x, y) + 1) / 2)
}

// GetSeed returns the permutation seed
func (g *PerlinGenerator) GetSeed() int64 {
	return g.seed
}

// SimplexGenerator implements Source using OpenSimplex noise.
type SimplexGenerator struct {
	noise opensimplex.Noise
	seed  int64
}

// NewSimplexGenerator creates a new OpenSimplex noise source with the given seed.
func NewSimplexGenerator(seed int64) *SimplexGenerator {
	return &SimplexGenerator{
		noise: opensimplex.NewNormalized(seed),
		seed:  seed,
	}
}

// Noise2D returns the OpenSimplex value at (x, y), already normalized to [0, 1].
func (g *SimplexGenerator) Noise2D(x, y float64) float64 {
	return unit(g.noise.Eval2(x, y))
}

// GetSeed returns the permutation seed
func (g *SimplexGenerator) GetSeed() int64 {
	return g.seed
}

// NewSource builds the backend named by kind. An empty kind selects Perlin.
func NewSource(kind Kind, seed int64) (Source, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case "", KindPerlin:
		return NewPerlinGenerator(seed), nil
	case KindSimplex:
		return NewSimplexGenerator(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func unit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
