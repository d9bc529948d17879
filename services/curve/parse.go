package curve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Parse for a malformed curve description.
var ErrSyntax = errors.New("invalid curve syntax")

// Parse builds a curve from its textual form:
//
//	identity                      (also the empty string)
//	linear:<slope>,<intercept>
//	piecewise:<t>:<v>,<t>:<v>,...
//	hermite:<t>:<v>:<in>:<out>,...
func Parse(spec string) (Curve, error) {
	spec = strings.TrimSpace(spec)
	kind, body, _ := strings.Cut(spec, ":")

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "identity":
		if body != "" {
			return nil, fmt.Errorf("%w: identity takes no arguments", ErrSyntax)
		}
		return Identity{}, nil

	case "linear":
		nums, err := parseFloats(body, ",", 2)
		if err != nil {
			return nil, fmt.Errorf("linear: %w", err)
		}
		return Linear{Slope: nums[0], Intercept: nums[1]}, nil

	case "piecewise":
		var points []Point
		for _, key := range splitKeys(body) {
			nums, err := parseFloats(key, ":", 2)
			if err != nil {
				return nil, fmt.Errorf("piecewise: %w", err)
			}
			points = append(points, Point{Time: nums[0], Value: nums[1]})
		}
		return NewPiecewiseLinear(points...)

	case "hermite":
		var keys []Keyframe
		for _, key := range splitKeys(body) {
			nums, err := parseFloats(key, ":", 4)
			if err != nil {
				return nil, fmt.Errorf("hermite: %w", err)
			}
			keys = append(keys, Keyframe{Time: nums[0], Value: nums[1], InTangent: nums[2], OutTangent: nums[3]})
		}
		return NewHermite(keys...)

	default:
		return nil, fmt.Errorf("%w: unknown curve %q", ErrSyntax, kind)
	}
}

// MustParse is like Parse but panics on error. Intended for tests and fixed literals.
func MustParse(spec string) Curve {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func splitKeys(body string) []string {
	var keys []string
	for _, k := range strings.Split(body, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func parseFloats(s, sep string, want int) ([]float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != want {
		return nil, fmt.Errorf("%w: want %d values in %q, got %d", ErrSyntax, want, s, len(parts))
	}

	out := make([]float64, want)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrSyntax, p)
		}
		out[i] = f
	}
	return out, nil
}
