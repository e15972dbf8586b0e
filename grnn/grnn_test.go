package grnn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

func trainSine(t *testing.T, opts ...Option) *GRNN {
	t.Helper()
	logger, _ := log.NewTestLogger(log.LevelError)
	g := New(1, append([]Option{WithLogger(logger)}, opts...)...)
	for i := 0; i < 60; i++ {
		x := -3 + 6*float64(i)/59
		require.NoError(t, g.AddCase([]float64{x, math.Sin(x)}))
	}
	require.NoError(t, g.Train())
	return g
}

func TestGRNN_FitsSmoothFunction(t *testing.T) {
	g := trainSine(t)

	for _, x := range []float64{-2.5, -1, 0, 0.7, 2} {
		v, err := g.PredictOne([]float64{x})
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(x), v, 0.1, "x=%v", x)
	}
	assert.Less(t, g.LOOError(), 0.01)
	assert.Len(t, g.Sigma(), 1)
	assert.Equal(t, 60, g.Len())
}

func TestGRNN_IrrelevantInputGetsWideSigma(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelError)
	g := New(2, WithLogger(logger), WithRefineIterations(200))
	for i := 0; i < 15; i++ {
		for k := 0; k < 5; k++ {
			x := -2 + 4*float64(i)/14
			noise := float64((i*7+k*3)%5) - 2
			require.NoError(t, g.AddCase([]float64{x, noise, x * x}))
		}
	}
	require.NoError(t, g.Train())

	sigma := g.Sigma()
	assert.Greater(t, sigma[1], sigma[0])
}

func TestGRNN_WithPowellRefinement(t *testing.T) {
	g := trainSine(t, WithMinimizer(minimize.NewPowell()), WithRefineIterations(5))
	v, err := g.PredictOne([]float64{1})
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(1), v, 0.1)
}

func TestGRNN_CoarseOnly(t *testing.T) {
	g := trainSine(t, WithRefineIterations(0), WithSearchPoints(10), WithSigmaRange(0.05, 5))
	v, err := g.PredictOne([]float64{0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 0.1)
}

func TestGRNN_Errors(t *testing.T) {
	g := New(2)

	_, err := g.PredictOne([]float64{0, 0})
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))

	var de *errors.DimensionError
	assert.True(t, errors.As(g.AddCase([]float64{1, 2}), &de))

	var ne *errors.NumericalInstabilityError
	assert.True(t, errors.As(g.AddCase([]float64{1, math.NaN(), 2}), &ne))

	require.NoError(t, g.AddCase([]float64{0, 0, 1}))
	assert.True(t, errors.Is(g.Train(), errors.ErrEmptyData))

	require.NoError(t, g.AddCase([]float64{1, 1, 2}))
	require.NoError(t, g.Train())
	assert.True(t, errors.Is(g.Train(), errors.ErrAlreadyFitted))
	assert.True(t, errors.Is(g.AddCase([]float64{2, 2, 3}), errors.ErrAlreadyFitted))

	_, err = g.PredictOne([]float64{0})
	assert.True(t, errors.As(err, &de))

	bad := New(1, WithSigmaRange(1, 0.5))
	require.NoError(t, bad.AddCase([]float64{0, 0}))
	require.NoError(t, bad.AddCase([]float64{1, 1}))
	var ve *errors.ValidationError
	assert.True(t, errors.As(bad.Train(), &ve))
}

func TestKernelAverage_FarPointsStayFinite(t *testing.T) {
	// exp(-1e4) underflows, the shift keeps the nearest weight at one
	v := kernelAverage([]float64{1e4, 1e4 + 1, math.Inf(1)}, []float64{2, 5, 100})
	assert.False(t, math.IsNaN(v))
	want := (2 + 5*math.Exp(-1)) / (1 + math.Exp(-1))
	assert.InDelta(t, want, v, 1e-12)
}
