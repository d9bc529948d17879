// Package heightfield samples terrain height from layered coherent noise.
package heightfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/VoidMesh/heightmesh/internal/logging"
	"github.com/VoidMesh/heightmesh/services/curve"
	"github.com/VoidMesh/heightmesh/services/noise"
)

var (
	ErrNilSource         = errors.New("noise source is nil")
	ErrNilCurve          = errors.New("height curve is nil")
	ErrNoLayers          = errors.New("no noise layers")
	ErrInvalidLayerScale = errors.New("layer scale must be positive and finite")
)

// Offset is the user supplied 2D offset. Y shifts the grid's z axis.
type Offset struct {
	X, Y float64
}

// Position is the world position of the terrain origin. Only X and Z feed the noise.
type Position struct {
	X, Y, Z float64
}

// Params configures a Sampler.
type Params struct {
	// LayerScales and LayerAmplitudes are parallel; index i of each describes octave i.
	LayerScales     []float64
	LayerAmplitudes []float64

	// Seed is added to the noise input coordinates.
	Seed int

	Offset   Offset
	Position Position

	HeightMultiplier float64

	// Invert negates the final height.
	Invert bool

	// Trace logs every sample at debug level.
	Trace bool
}

// Sampler computes heights for integer grid coordinates. It holds no mutable
// state once built and may be shared between goroutines.
type Sampler struct {
	source noise.Source
	curve  curve.Curve
	logger logging.Interface

	scales     []float64
	amplitudes []float64

	originX, originZ float64
	seed             float64
	multiplier       float64
	invert           bool
	trace            bool
}

// New validates params and returns a Sampler. A nil logger uses the global logger.
func New(params Params, source noise.Source, c curve.Curve, logger logging.Interface) (*Sampler, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if c == nil {
		return nil, ErrNilCurve
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	layers := min(len(params.LayerScales), len(params.LayerAmplitudes))
	if layers == 0 {
		return nil, fmt.Errorf("%w: %d scales, %d amplitudes", ErrNoLayers, len(params.LayerScales), len(params.LayerAmplitudes))
	}
	if len(params.LayerScales) != len(params.LayerAmplitudes) {
		logger.Warn("Layer arrays differ in length, extra entries ignored",
			"scales", len(params.LayerScales), "amplitudes", len(params.LayerAmplitudes), "layers_used", layers)
	}

	scales := append([]float64(nil), params.LayerScales[:layers]...)
	amplitudes := append([]float64(nil), params.LayerAmplitudes[:layers]...)
	for i, s := range scales {
		if !(s > 0) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: layer %d has scale %g", ErrInvalidLayerScale, i, s)
		}
	}

	return &Sampler{
		source:     source,
		curve:      c,
		logger:     logger,
		scales:     scales,
		amplitudes: amplitudes,
		originX:    params.Position.X + params.Offset.X,
		originZ:    params.Position.Z + params.Offset.Y,
		seed:       float64(params.Seed),
		multiplier: params.HeightMultiplier,
		invert:     params.Invert,
		trace:      params.Trace,
	}, nil
}

// Layers returns the number of octaves actually evaluated.
func (s *Sampler) Layers() int {
	return len(s.scales)
}

// Raw returns the accumulated octave sum at (x, z), before the curve is applied.
func (s *Sampler) Raw(x, z int) float64 {
	wx := float64(x) + s.originX
	wz := float64(z) + s.originZ

	var sum float64
	for i, scale := range s.scales {
		cx := wx/scale + s.seed
		cz := wz/scale + s.seed
		sum += s.source.Noise2D(cx, cz) * s.amplitudes[i]
	}
	return sum
}

// Sample returns the shaped height at grid coordinate (x, z).
func (s *Sampler) Sample(x, z int) float64 {
	raw := s.Raw(x, z)

	height := s.curve.Evaluate(raw) * s.multiplier
	if s.invert {
		height = -height
	}

	if s.trace {
		s.logger.Debug("Sampled height", "x", x, "z", z, "noise", raw, "height", height)
	}
	return height
}
