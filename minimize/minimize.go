// Package minimize provides derivative-free minimizers behind a small
// contract shared by the constrained combiners and the kernel regressor.
//
// Two implementations are available:
//   - Powell: direction-set search with Brent line minimization (default)
//   - NelderMead: gonum/optimize's downhill simplex
//
// Reaching the iteration budget is not an error. The best point found is
// returned with Converged set to false.
package minimize

import (
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// Default settings used by the constrained combiners.
const (
	DefaultMaxIterations = 20
	DefaultTolerance     = 1e-6
	DefaultCritLimit     = 0.0
)

// Func is an objective to be minimized.
type Func func(x []float64) float64

// Settings bounds the work done by a Minimizer.
type Settings struct {
	// MaxIterations is the iteration budget. Each implementation defines what
	// one iteration is (a sweep of all directions for Powell).
	MaxIterations int
	// CritLimit stops the search early once the objective is strictly below it.
	CritLimit float64
	// Tolerance is the relative function-value convergence tolerance.
	Tolerance float64
}

// DefaultSettings returns the 20 iteration, 1e-6 tolerance, no early stop budget.
func DefaultSettings() Settings {
	return Settings{
		MaxIterations: DefaultMaxIterations,
		CritLimit:     DefaultCritLimit,
		Tolerance:     DefaultTolerance,
	}
}

// Validate checks the settings.
func (s Settings) Validate() error {
	if s.MaxIterations <= 0 {
		return errors.NewValidationError("max_iterations", "must be positive", s.MaxIterations)
	}
	if s.Tolerance < 0 {
		return errors.NewValidationError("tolerance", "must be non-negative", s.Tolerance)
	}
	return nil
}

// Result is the outcome of a minimization.
type Result struct {
	// X is the best point found.
	X []float64
	// F is the objective value at X.
	F float64
	// Iterations is the number of completed iterations.
	Iterations int
	// Evaluations is the number of objective evaluations.
	Evaluations int
	// Converged reports whether the tolerance or CritLimit test was met
	// before the iteration budget ran out.
	Converged bool
}

// Minimizer minimizes an objective from a starting point.
type Minimizer interface {
	// Minimize returns the best point found. x0 is not modified.
	Minimize(f Func, x0 []float64, s Settings) (*Result, error)
	// Name identifies the algorithm in logs and warnings.
	Name() string
}

// counted wraps f and counts evaluations.
type counted struct {
	f     Func
	evals int
}

func (c *counted) eval(x []float64) float64 {
	c.evals++
	return c.f(x)
}

func checkStart(op string, f Func, x0 []float64, s Settings) error {
	if f == nil {
		return errors.NewValidationError("objective", "must not be nil", nil)
	}
	if len(x0) == 0 {
		return errors.NewValidationError("x0", "starting point must not be empty", 0)
	}
	if err := errors.CheckNumericalStability(op, x0, 0); err != nil {
		return err
	}
	return s.Validate()
}
