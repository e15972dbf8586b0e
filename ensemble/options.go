package ensemble

import (
	"github.com/YuminosukeSato/scigo-combine/linear"
	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Option configures a combiner.
type Option func(*config)

type config struct {
	minimizer     minimize.Minimizer
	settings      minimize.Settings
	rankTolerance float64
	logger        log.Logger
	kernel        KernelRegressorFactory
}

func defaultConfig() config {
	return config{
		minimizer:     minimize.NewPowell(),
		settings:      minimize.DefaultSettings(),
		rankTolerance: linear.DefaultTolerance,
	}
}

func (c *config) validate() error {
	if c.minimizer == nil {
		return errors.NewValidationError("minimizer", "must not be nil", nil)
	}
	if err := c.settings.Validate(); err != nil {
		return err
	}
	if c.rankTolerance < 0 || c.rankTolerance >= 1 {
		return errors.NewValidationError("rank_tolerance", "must be in [0, 1)", c.rankTolerance)
	}
	return nil
}

// WithMinimizer sets the minimizer used by Unbiased and Biased.
// Defaults to minimize.Powell.
func WithMinimizer(m minimize.Minimizer) Option {
	return func(c *config) {
		c.minimizer = m
	}
}

// WithMaxIterations sets the optimizer iteration budget. Defaults to 20.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.settings.MaxIterations = n
	}
}

// WithTolerance sets the optimizer convergence tolerance. Defaults to 1e-6.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.settings.Tolerance = tol
	}
}

// WithRankTolerance sets the relative singular value cutoff of the
// Unconstrained least-squares solve.
func WithRankTolerance(tol float64) Option {
	return func(c *config) {
		c.rankTolerance = tol
	}
}

// WithLogger sets the logger for fit diagnostics.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithKernelRegressor sets the engine factory used by GenReg.
// Defaults to a GRNN with automatic sigma selection.
func WithKernelRegressor(f KernelRegressorFactory) Option {
	return func(c *config) {
		c.kernel = f
	}
}
