package ensemble

import (
	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Diagnostics describes the optimizer run behind a constrained fit.
type Diagnostics struct {
	Algorithm   string
	Iterations  int
	Evaluations int
	Loss        float64
	Converged   bool
	// Warning is set when the iteration budget ran out. The fit still
	// succeeded with the best point found.
	Warning *errors.ConvergenceWarning
}

// optimize runs the configured minimizer on f from x0 and records the run.
// Running out of iterations is not an error.
func (b *base) optimize(f minimize.Func, x0 []float64) ([]float64, Diagnostics, error) {
	res, err := b.cfg.minimizer.Minimize(f, x0, b.cfg.settings)
	if err != nil {
		return nil, Diagnostics{}, errors.Wrapf(err, "%s.Fit", b.name)
	}
	if err := errors.CheckNumericalStability(b.name+".Fit", res.X, res.Iterations); err != nil {
		return nil, Diagnostics{}, err
	}

	d := Diagnostics{
		Algorithm:   b.cfg.minimizer.Name(),
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Loss:        res.F,
		Converged:   res.Converged,
	}
	if !res.Converged {
		d.Warning = errors.NewConvergenceWarning(d.Algorithm, d.Iterations,
			"iteration budget reached, using best point found")
		b.logger.Debug(d.Warning.Error(),
			log.AlgorithmKey, d.Algorithm,
			log.IterationKey, d.Iterations,
			log.LossKey, d.Loss,
			log.ErrorCodeKey, log.ErrorConvergence,
		)
	}
	return res.X, d, nil
}

func (d Diagnostics) fields() []any {
	return []any{
		log.AlgorithmKey, d.Algorithm,
		log.IterationKey, d.Iterations,
		log.EvaluationsKey, d.Evaluations,
		log.LossKey, d.Loss,
		log.ConvergedKey, d.Converged,
	}
}
