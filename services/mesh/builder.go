// Package mesh triangulates a height sampler into a uniform grid mesh.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidMeshSize = errors.New("invalid mesh size")
	ErrNilSampler      = errors.New("height sampler is nil")
	ErrCorruptMesh     = errors.New("mesh buffers are inconsistent")
)

// MaxMeshSize keeps every vertex index addressable by a uint32.
const MaxMeshSize = 65534

// HeightSampler supplies the height of grid vertex (x, z).
type HeightSampler interface {
	Sample(x, z int) float64
}

// SamplerFunc adapts a function to HeightSampler.
type SamplerFunc func(x, z int) float64

func (f SamplerFunc) Sample(x, z int) float64 { return f(x, z) }

type Vec2 struct {
	X, Y float32
}

type Vec3 struct {
	X, Y, Z float32
}

// Data is a built grid mesh. Vertices and UVs are row-major (z outer, x inner);
// Triangles holds three vertex indices per triangle.
type Data struct {
	Size      int
	Vertices  []Vec3
	Triangles []uint32
	UVs       []Vec2
}

// Build samples a (size+1)x(size+1) vertex grid over [0,size]x[0,size] and
// splits every quad into two triangles.
func Build(size int, sampler HeightSampler) (*Data, error) {
	if size < 1 || size > MaxMeshSize {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidMeshSize, size, MaxMeshSize)
	}
	if sampler == nil {
		return nil, ErrNilSampler
	}

	side := size + 1
	data := &Data{
		Size:      size,
		Vertices:  make([]Vec3, 0, side*side),
		UVs:       make([]Vec2, 0, side*side),
		Triangles: make([]uint32, 0, 6*size*size),
	}

	n := float32(size)
	for z := 0; z <= size; z++ {
		for x := 0; x <= size; x++ {
			h := sampler.Sample(x, z)
			data.Vertices = append(data.Vertices, Vec3{X: float32(x), Y: float32(h), Z: float32(z)})
			data.UVs = append(data.UVs, Vec2{X: float32(x) / n, Y: float32(z) / n})
		}
	}

	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			topLeft := uint32(z*side + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*side + x)
			bottomRight := bottomLeft + 1

			data.Triangles = append(data.Triangles,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return data, nil
}

// Index returns the vertex index of grid point (x, z).
func (d *Data) Index(x, z int) int {
	return z*(d.Size+1) + x
}

func (d *Data) VertexCount() int {
	return len(d.Vertices)
}

func (d *Data) TriangleCount() int {
	return len(d.Triangles) / 3
}

// HeightRange returns the lowest and highest vertex Y.
func (d *Data) HeightRange() (lo, hi float32) {
	if len(d.Vertices) == 0 {
		return 0, 0
	}
	lo, hi = float32(math.Inf(1)), float32(math.Inf(-1))
	for _, v := range d.Vertices {
		lo = min(lo, v.Y)
		hi = max(hi, v.Y)
	}
	return lo, hi
}

// Validate checks the buffer length invariants and that every index is in range.
func (d *Data) Validate() error {
	if d.Size < 1 {
		return fmt.Errorf("%w: size %d", ErrCorruptMesh, d.Size)
	}
	side := d.Size + 1
	if want := side * side; len(d.Vertices) != want {
		return fmt.Errorf("%w: %d vertices, want %d", ErrCorruptMesh, len(d.Vertices), want)
	}
	if len(d.UVs) != len(d.Vertices) {
		return fmt.Errorf("%w: %d uvs for %d vertices", ErrCorruptMesh, len(d.UVs), len(d.Vertices))
	}
	if want := 6 * d.Size * d.Size; len(d.Triangles) != want {
		return fmt.Errorf("%w: %d indices, want %d", ErrCorruptMesh, len(d.Triangles), want)
	}
	limit := uint32(len(d.Vertices))
	for i, idx := range d.Triangles {
		if idx >= limit {
			return fmt.Errorf("%w: index %d at %d out of range", ErrCorruptMesh, idx, i)
		}
	}
	return nil
}
