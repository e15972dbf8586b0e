package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

func tabulate(xs, ys []float64, f func(x, y float64) float64) *mat.Dense {
	z := mat.NewDense(len(xs), len(ys), nil)
	for i, x := range xs {
		for j, y := range ys {
			z.Set(i, j, f(x, y))
		}
	}
	return z
}

func TestBilinear_ExactForBilinearFunction(t *testing.T) {
	f := func(x, y float64) float64 { return 1 + 2*x - 3*y + 0.5*x*y }
	xs := []float64{-1, 0, 0.5, 2}
	ys := []float64{0, 1, 3}
	b, err := NewBilinear(xs, ys, tabulate(xs, ys, f), false)
	require.NoError(t, err)

	for _, p := range [][2]float64{{-1, 0}, {2, 3}, {0.2, 0.7}, {1.3, 2.9}, {0, 1}} {
		assert.InDelta(t, f(p[0], p[1]), b.Evaluate(p[0], p[1]), 1e-12, "at %v", p)
	}
}

func TestBilinear_CornersAndClamping(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	z := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b, err := NewBilinear(xs, ys, z, false)
	require.NoError(t, err)

	tests := []struct {
		x, y, want float64
	}{
		{0, 0, 1},
		{0, 1, 2},
		{1, 0, 3},
		{1, 1, 4},
		{0.5, 0.5, 2.5},
		{-5, -5, 1},
		{9, 0.5, 3.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, b.Evaluate(tt.x, tt.y), 1e-12, "at (%v, %v)", tt.x, tt.y)
	}
}

func TestBilinear_QuadraticExactForQuadratics(t *testing.T) {
	f := func(x, y float64) float64 { return x*x - 2*x*y + 3*y*y + x - 4 }
	xs := []float64{0, 1, 2.5, 3, 5}
	ys := []float64{-2, -1, 0, 1.5}
	b, err := NewBilinear(xs, ys, tabulate(xs, ys, f), true)
	require.NoError(t, err)

	for _, p := range [][2]float64{{0.1, -1.9}, {1.2, -0.4}, {2.9, 1.0}, {4.7, 1.4}, {2.5, 0}} {
		assert.InDelta(t, f(p[0], p[1]), b.Evaluate(p[0], p[1]), 1e-9, "at %v", p)
	}
}

func TestNewBilinear_Validation(t *testing.T) {
	z22 := mat.NewDense(2, 2, nil)
	var ve *errors.ValidationError
	var de *errors.DimensionError

	_, err := NewBilinear([]float64{0}, []float64{0, 1}, mat.NewDense(1, 2, nil), false)
	assert.True(t, errors.As(err, &ve))

	_, err = NewBilinear([]float64{0, 1}, []float64{0, 1}, z22, true)
	assert.True(t, errors.As(err, &ve))

	_, err = NewBilinear([]float64{1, 0}, []float64{0, 1}, z22, false)
	assert.True(t, errors.As(err, &ve))

	_, err = NewBilinear([]float64{0, 1}, []float64{1, 1}, z22, false)
	assert.True(t, errors.As(err, &ve))

	_, err = NewBilinear([]float64{0, 1, 2}, []float64{0, 1}, z22, false)
	assert.True(t, errors.As(err, &de))

	_, err = NewBilinear([]float64{0, 1}, []float64{0, 1, 2}, z22, false)
	assert.True(t, errors.As(err, &de))
}
