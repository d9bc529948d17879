package heightfield

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VoidMesh/heightmesh/internal/testmocks/mocknoise"
	"github.com/VoidMesh/heightmesh/internal/testutil"
	"github.com/VoidMesh/heightmesh/services/curve"
	"github.com/VoidMesh/heightmesh/services/noise"
)

// noiseFunc adapts a plain function to noise.Source.
type noiseFunc func(x, y float64) float64

func (f noiseFunc) Noise2D(x, y float64) float64 { return f(x, y) }

func baseParams() Params {
	return Params{
		LayerScales:      []float64{10},
		LayerAmplitudes:  []float64{1},
		HeightMultiplier: 1,
	}
}

func TestNew_Preconditions(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	src := noise.NewPerlinGenerator(1)

	tests := []struct {
		name    string
		params  Params
		source  noise.Source
		curve   curve.Curve
		wantErr error
	}{
		{name: "nil source", params: baseParams(), curve: curve.Identity{}, wantErr: ErrNilSource},
		{name: "nil curve", params: baseParams(), source: src, wantErr: ErrNilCurve},
		{
			name:    "empty layers",
			params:  Params{HeightMultiplier: 1},
			source:  src,
			curve:   curve.Identity{},
			wantErr: ErrNoLayers,
		},
		{
			name:    "scales without amplitudes",
			params:  Params{LayerScales: []float64{10, 5}, HeightMultiplier: 1},
			source:  src,
			curve:   curve.Identity{},
			wantErr: ErrNoLayers,
		},
		{
			name:    "zero scale",
			params:  Params{LayerScales: []float64{10, 0}, LayerAmplitudes: []float64{1, 1}},
			source:  src,
			curve:   curve.Identity{},
			wantErr: ErrInvalidLayerScale,
		},
		{
			name:    "negative scale",
			params:  Params{LayerScales: []float64{-1}, LayerAmplitudes: []float64{1}},
			source:  src,
			curve:   curve.Identity{},
			wantErr: ErrInvalidLayerScale,
		},
		{
			name:    "NaN scale",
			params:  Params{LayerScales: []float64{math.NaN()}, LayerAmplitudes: []float64{1}},
			source:  src,
			curve:   curve.Identity{},
			wantErr: ErrInvalidLayerScale,
		},
		{
			name:   "invalid scale past the shorter array is ignored",
			params: Params{LayerScales: []float64{10, 0}, LayerAmplitudes: []float64{1}},
			source: src,
			curve:  curve.Identity{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.params, tt.source, tt.curve, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestSample_SingleLayerIdentityEqualsRawNoise(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	src := noise.NewPerlinGenerator(7)
	s, err := New(baseParams(), src, curve.Identity{}, nil)
	require.NoError(t, err)

	assert.Equal(t, src.Noise2D(0, 0), s.Sample(0, 0))
	assert.Equal(t, src.Noise2D(0.3, 0.7), s.Sample(3, 7))
}

func TestSample_CoordinateMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocknoise.NewMockSource(ctrl)
	params := Params{
		LayerScales:      []float64{4, 2},
		LayerAmplitudes:  []float64{1, 0.5},
		Seed:             3,
		Offset:           Offset{X: 1, Y: 2},
		Position:         Position{X: 10, Y: 99, Z: 20},
		HeightMultiplier: 2,
	}

	// x=1, z=2 gives world (12, 24); the seed is added after scaling.
	gomock.InOrder(
		src.EXPECT().Noise2D(12.0/4+3, 24.0/4+3).Return(0.5),
		src.EXPECT().Noise2D(12.0/2+3, 24.0/2+3).Return(0.25),
	)

	s, err := New(params, src, curve.Identity{}, nil)
	require.NoError(t, err)

	// (0.5*1 + 0.25*0.5) * 2
	assert.InDelta(t, 1.25, s.Sample(1, 2), 1e-12)
}

func TestSample_CurveAndMultiplier(t *testing.T) {
	src := noiseFunc(func(x, y float64) float64 { return 0.5 })
	params := baseParams()
	params.HeightMultiplier = 3

	s, err := New(params, src, curve.Linear{Slope: 2, Intercept: 1}, nil)
	require.NoError(t, err)

	// curve(0.5) = 2, times 3
	assert.InDelta(t, 6.0, s.Sample(4, 4), 1e-12)
	assert.InDelta(t, 0.5, s.Raw(4, 4), 1e-12)
}

func TestSample_InvertNegates(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	src := noise.NewSimplexGenerator(99)
	params := Params{
		LayerScales:      []float64{10, 5, 1},
		LayerAmplitudes:  []float64{1, 0.5, 0.25},
		Seed:             42,
		HeightMultiplier: 2,
	}

	up, err := New(params, src, curve.Identity{}, nil)
	require.NoError(t, err)

	params.Invert = true
	down, err := New(params, src, curve.Identity{}, nil)
	require.NoError(t, err)

	for z := 0; z < 5; z++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, -up.Sample(x, z), down.Sample(x, z), "invert should negate at (%d, %d)", x, z)
		}
	}
}

func TestSample_MismatchedLayerLengths(t *testing.T) {
	logger, buf := testutil.NewCapturingLogger()

	calls := 0
	src := noiseFunc(func(x, y float64) float64 {
		calls++
		return 1
	})

	tests := []struct {
		name       string
		scales     []float64
		amplitudes []float64
		wantLayers int
		wantHeight float64
	}{
		{name: "more scales", scales: []float64{10, 5, 1}, amplitudes: []float64{1, 0.5}, wantLayers: 2, wantHeight: 1.5},
		{name: "more amplitudes", scales: []float64{10}, amplitudes: []float64{1, 0.5, 0.25}, wantLayers: 1, wantHeight: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			s, err := New(Params{
				LayerScales:      tt.scales,
				LayerAmplitudes:  tt.amplitudes,
				HeightMultiplier: 1,
			}, src, curve.Identity{}, logger)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLayers, s.Layers())
			assert.NotPanics(t, func() {
				assert.InDelta(t, tt.wantHeight, s.Sample(2, 3), 1e-12)
			})
			assert.Equal(t, tt.wantLayers, calls)
		})
	}

	assert.Contains(t, buf.String(), "Layer arrays differ in length")
}

func TestSample_Deterministic(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	params := Params{
		LayerScales:      []float64{10, 5, 1},
		LayerAmplitudes:  []float64{1, 0.5, 0.25},
		Seed:             42,
		Offset:           Offset{X: 3.5, Y: -1},
		HeightMultiplier: 2,
	}
	c := curve.MustParse("piecewise:0:0,1:0.5,2:2")

	a, err := New(params, noise.NewPerlinGenerator(42), c, nil)
	require.NoError(t, err)
	b, err := New(params, noise.NewPerlinGenerator(42), c, nil)
	require.NoError(t, err)

	for z := 0; z <= 8; z++ {
		for x := 0; x <= 8; x++ {
			first := a.Sample(x, z)
			assert.Equal(t, first, a.Sample(x, z))
			assert.Equal(t, first, b.Sample(x, z))
		}
	}
}

func TestSample_ConcurrentCallsAgree(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	s, err := New(Params{
		LayerScales:      []float64{10, 5},
		LayerAmplitudes:  []float64{1, 0.5},
		HeightMultiplier: 1,
	}, noise.NewPerlinGenerator(5), curve.Identity{}, nil)
	require.NoError(t, err)

	want := s.Sample(6, 9)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Sample(6, 9)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func TestSample_TraceLogging(t *testing.T) {
	logger, buf := testutil.NewCapturingLogger()
	src := noiseFunc(func(x, y float64) float64 { return 0.25 })

	quiet, err := New(baseParams(), src, curve.Identity{}, logger)
	require.NoError(t, err)
	quiet.Sample(1, 1)
	assert.NotContains(t, buf.String(), "Sampled height", "tracing must be off by default")

	params := baseParams()
	params.Trace = true
	loud, err := New(params, src, curve.Identity{}, logger)
	require.NoError(t, err)
	loud.Sample(1, 1)
	assert.Contains(t, buf.String(), "Sampled height")
}

func TestNew_CopiesLayerSlices(t *testing.T) {
	scales := []float64{10}
	amps := []float64{1}
	src := noiseFunc(func(x, y float64) float64 { return 1 })

	s, err := New(Params{LayerScales: scales, LayerAmplitudes: amps, HeightMultiplier: 1}, src, curve.Identity{}, nil)
	require.NoError(t, err)

	amps[0] = 100
	assert.Equal(t, 1.0, s.Sample(0, 0))
}
