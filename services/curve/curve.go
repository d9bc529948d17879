// Package curve provides height response curves. A curve maps the accumulated
// noise value to a shaping factor before the global height multiplier is applied.
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrNoKeys       = errors.New("curve has no keys")
	ErrDuplicateKey = errors.New("curve has duplicate key time")
	ErrInvalidKey   = errors.New("curve key is not finite")
)

// Curve evaluates a response mapping. Implementations must be pure.
type Curve interface {
	Evaluate(t float64) float64
}

// Func adapts an ordinary function to the Curve interface.
type Func func(t float64) float64

func (f Func) Evaluate(t float64) float64 { return f(t) }

// Identity returns its input unchanged.
type Identity struct{}

func (Identity) Evaluate(t float64) float64 { return t }

// Linear maps t to Slope*t + Intercept.
type Linear struct {
	Slope     float64
	Intercept float64
}

func (l Linear) Evaluate(t float64) float64 { return l.Slope*t + l.Intercept }

// Point is a key of a piecewise linear curve.
type Point struct {
	Time  float64
	Value float64
}

// PiecewiseLinear interpolates linearly between sorted keys and holds the
// end values outside the key range.
type PiecewiseLinear struct {
	points []Point
}

// NewPiecewiseLinear validates and sorts the keys.
func NewPiecewiseLinear(points ...Point) (*PiecewiseLinear, error) {
	if len(points) == 0 {
		return nil, ErrNoKeys
	}

	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for i, p := range sorted {
		if !finite(p.Time) || !finite(p.Value) {
			return nil, fmt.Errorf("%w: key %d", ErrInvalidKey, i)
		}
		if i > 0 && sorted[i-1].Time == p.Time {
			return nil, fmt.Errorf("%w: t=%g", ErrDuplicateKey, p.Time)
		}
	}
	return &PiecewiseLinear{points: sorted}, nil
}

// Points returns a copy of the sorted keys.
func (c *PiecewiseLinear) Points() []Point {
	return append([]Point(nil), c.points...)
}

func (c *PiecewiseLinear) Evaluate(t float64) float64 {
	pts := c.points
	if t <= pts[0].Time {
		return pts[0].Value
	}
	last := len(pts) - 1
	if t >= pts[last].Time {
		return pts[last].Value
	}

	// first key strictly after t
	i := sort.Search(len(pts), func(i int) bool { return pts[i].Time > t })
	a, b := pts[i-1], pts[i]
	u := (t - a.Time) / (b.Time - a.Time)
	return a.Value + (b.Value-a.Value)*u
}

// Keyframe is a key of a Hermite curve with independent in and out tangents,
// the same shape an animation curve asset stores.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Hermite evaluates a cubic Hermite spline through its keyframes, clamped at the ends.
type Hermite struct {
	keys []Keyframe
}

// NewHermite validates and sorts the keyframes.
func NewHermite(keys ...Keyframe) (*Hermite, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	sorted := append([]Keyframe(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for i, k := range sorted {
		if !finite(k.Time) || !finite(k.Value) || !finite(k.InTangent) || !finite(k.OutTangent) {
			return nil, fmt.Errorf("%w: key %d", ErrInvalidKey, i)
		}
		if i > 0 && sorted[i-1].Time == k.Time {
			return nil, fmt.Errorf("%w: t=%g", ErrDuplicateKey, k.Time)
		}
	}
	return &Hermite{keys: sorted}, nil
}

// Keys returns a copy of the sorted keyframes.
func (c *Hermite) Keys() []Keyframe {
	return append([]Keyframe(nil), c.keys...)
}

func (c *Hermite) Evaluate(t float64) float64 {
	keys := c.keys
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := len(keys) - 1
	if t >= keys[last].Time {
		return keys[last].Value
	}

	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t })
	a, b := keys[i-1], keys[i]

	dt := b.Time - a.Time
	u := (t - a.Time) / dt
	u2 := u * u
	u3 := u2 * u

	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	return h00*a.Value + h10*dt*a.OutTangent + h01*b.Value + h11*dt*b.InTangent
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
