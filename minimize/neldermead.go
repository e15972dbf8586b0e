package minimize

import (
	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// NelderMead adapts gonum's downhill simplex method to the Minimizer
// contract. One iteration is one gonum major iteration.
type NelderMead struct {
	// SimplexSize is the initial simplex edge length. Zero uses gonum's default.
	SimplexSize float64
}

// NewNelderMead returns a NelderMead minimizer with gonum's default simplex.
func NewNelderMead() *NelderMead {
	return &NelderMead{}
}

// Name implements Minimizer.
func (*NelderMead) Name() string { return "nelder-mead" }

// Minimize implements Minimizer.
func (nm *NelderMead) Minimize(f Func, x0 []float64, s Settings) (res *Result, err error) {
	defer errors.Recover(&err, "NelderMead.Minimize")
	if err := checkStart("NelderMead.Minimize", f, x0, s); err != nil {
		return nil, err
	}

	cf := &counted{f: f}
	problem := optimize.Problem{Func: cf.eval}
	settings := &optimize.Settings{
		MajorIterations: s.MaxIterations,
		Converger: &critConverger{
			crit: s.CritLimit,
			inner: &optimize.FunctionConverge{
				Absolute:   stallAbsolute,
				Relative:   s.Tolerance,
				Iterations: stallIterations,
			},
		},
	}
	method := &optimize.NelderMead{SimplexSize: nm.SimplexSize}

	start := append([]float64(nil), x0...)
	r, optErr := optimize.Minimize(problem, start, settings, method)
	if r == nil {
		if optErr == nil {
			optErr = errors.New("optimizer returned no result")
		}
		return nil, errors.Wrap(optErr, "nelder-mead")
	}

	res = &Result{
		X:           append([]float64(nil), r.X...),
		F:           r.F,
		Iterations:  r.MajorIterations,
		Evaluations: cf.evals,
		Converged:   r.Status == optimize.FunctionConvergence || r.Status == optimize.MethodConverge,
	}
	// Running out of iterations still yields the best simplex vertex.
	if optErr != nil && r.Status != optimize.IterationLimit {
		return res, errors.Wrap(optErr, "nelder-mead")
	}
	if err := errors.CheckScalar("NelderMead.Minimize", res.F, res.Iterations); err != nil {
		return res, err
	}
	return res, nil
}

// The best vertex of a simplex often stays put for many iterations while the
// other vertices contract around it, so a stall only counts as convergence
// after gonum's default window.
const (
	stallAbsolute   = 1e-10
	stallIterations = 100
)

// critConverger reports convergence once the objective drops strictly below
// crit, and otherwise defers to inner.
type critConverger struct {
	crit  float64
	inner optimize.Converger
}

func (c *critConverger) Init(dim int) {
	c.inner.Init(dim)
}

func (c *critConverger) Converged(loc *optimize.Location) optimize.Status {
	if loc.F < c.crit {
		return optimize.FunctionConvergence
	}
	return c.inner.Converged(loc)
}
