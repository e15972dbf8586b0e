package minimize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

func quadratic(x []float64) float64 {
	// minimum 0 at (1, -2, 3) with coupled terms
	a, b, c := x[0]-1, x[1]+2, x[2]-3
	return a*a + 2*b*b + 3*c*c + a*b
}

func rosenbrock(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

func TestPowell_Quadratic(t *testing.T) {
	res, err := NewPowell().Minimize(quadratic, []float64{0, 0, 0}, DefaultSettings())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X[0], 1e-4)
	assert.InDelta(t, -2.0, res.X[1], 1e-4)
	assert.InDelta(t, 3.0, res.X[2], 1e-4)
	assert.InDelta(t, 0.0, res.F, 1e-8)
	assert.Greater(t, res.Evaluations, res.Iterations)
}

func TestPowell_Rosenbrock(t *testing.T) {
	s := Settings{MaxIterations: 200, Tolerance: 1e-12}
	res, err := NewPowell().Minimize(rosenbrock, []float64{-1.2, 1}, s)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X[0], 1e-3)
	assert.InDelta(t, 1.0, res.X[1], 1e-3)
}

func TestPowell_DoesNotModifyStart(t *testing.T) {
	x0 := []float64{5, 5, 5}
	_, err := NewPowell().Minimize(quadratic, x0, DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5}, x0)
}

func TestPowell_IterationBudgetIsNotAnError(t *testing.T) {
	s := Settings{MaxIterations: 1, Tolerance: 0}
	res, err := NewPowell().Minimize(rosenbrock, []float64{-1.2, 1}, s)
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Less(t, res.F, rosenbrock([]float64{-1.2, 1}))
}

func TestPowell_CritLimitStopsEarly(t *testing.T) {
	shifted := func(x []float64) float64 { return quadratic(x) - 10 }
	s := Settings{MaxIterations: 50, Tolerance: 0, CritLimit: -5}
	res, err := NewPowell().Minimize(shifted, []float64{0, 0, 0}, s)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Less(t, res.F, -5.0)
	assert.Equal(t, 1, res.Iterations)
}

func TestPowell_PenaltyKeepsCoordinateNonNegative(t *testing.T) {
	// unconstrained minimum at x = -1, penalized below zero
	f := func(x []float64) float64 {
		v := (x[0] + 1) * (x[0] + 1)
		if x[0] < 0 {
			v -= 1e30 * x[0]
		}
		return v
	}
	res, err := NewPowell().Minimize(f, []float64{2}, DefaultSettings())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.X[0], -1e-6)
	assert.InDelta(t, 0.0, res.X[0], 1e-4)
}

func TestNelderMead_Quadratic(t *testing.T) {
	s := Settings{MaxIterations: 2000, Tolerance: 1e-12}
	res, err := NewNelderMead().Minimize(quadratic, []float64{0, 0, 0}, s)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, res.X[0], 1e-3)
	assert.InDelta(t, -2.0, res.X[1], 1e-3)
	assert.InDelta(t, 3.0, res.X[2], 1e-3)
	assert.Less(t, res.F, 1e-6)
	// a stalled best vertex is not convergence until the simplex has contracted
	assert.True(t, res.Converged)
	assert.Greater(t, res.Iterations, 100)
	assert.Equal(t, "nelder-mead", NewNelderMead().Name())
}

func TestNelderMead_IterationBudgetIsNotAnError(t *testing.T) {
	s := Settings{MaxIterations: 3, Tolerance: 0}
	res, err := NewNelderMead().Minimize(rosenbrock, []float64{-1.2, 1}, s)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.LessOrEqual(t, res.F, rosenbrock([]float64{-1.2, 1}))
}

func TestMinimize_InvalidInput(t *testing.T) {
	minimizers := []Minimizer{NewPowell(), NewNelderMead()}
	for _, m := range minimizers {
		t.Run(m.Name(), func(t *testing.T) {
			var ve *errors.ValidationError

			_, err := m.Minimize(quadratic, nil, DefaultSettings())
			assert.True(t, errors.As(err, &ve))

			_, err = m.Minimize(nil, []float64{1}, DefaultSettings())
			assert.True(t, errors.As(err, &ve))

			_, err = m.Minimize(quadratic, []float64{0, 0, 0}, Settings{MaxIterations: 0})
			assert.True(t, errors.As(err, &ve))

			var ne *errors.NumericalInstabilityError
			_, err = m.Minimize(quadratic, []float64{math.NaN(), 0, 0}, DefaultSettings())
			assert.True(t, errors.As(err, &ne))
		})
	}
}

func TestBracketAndBrent(t *testing.T) {
	g := func(x float64) float64 { return (x - 3.5) * (x - 3.5) }
	a, b, c, fa, fb, fc := bracket(g, 0, 1)
	assert.LessOrEqual(t, fb, fa)
	assert.LessOrEqual(t, fb, fc)
	assert.True(t, (a-b)*(b-c) > 0, "b must lie between a and c")

	xmin, fmin := brent(g, a, b, c, fb, lineSearchRelTol)
	assert.InDelta(t, 3.5, xmin, 1e-6)
	assert.InDelta(t, 0.0, fmin, 1e-10)
}
