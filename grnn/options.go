package grnn

import (
	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Option configures a GRNN.
type Option func(*config)

type config struct {
	minSigma         float64
	maxSigma         float64
	searchPoints     int
	refineIterations int
	tolerance        float64
	minimizer        minimize.Minimizer
	logger           log.Logger
}

func defaultConfig() config {
	return config{
		minSigma:         0.01,
		maxSigma:         10.0,
		searchPoints:     20,
		refineIterations: 50,
		tolerance:        1e-6,
		minimizer:        minimize.NewNelderMead(),
	}
}

func (c *config) validate() error {
	if c.minSigma <= 0 || c.maxSigma <= c.minSigma {
		return errors.NewValidationError("sigma_range", "need 0 < min < max", [2]float64{c.minSigma, c.maxSigma})
	}
	if c.searchPoints < 2 {
		return errors.NewValidationError("search_points", "must be at least 2", c.searchPoints)
	}
	if c.refineIterations < 0 {
		return errors.NewValidationError("refine_iterations", "must be non-negative", c.refineIterations)
	}
	if c.minimizer == nil {
		return errors.NewValidationError("minimizer", "must not be nil", nil)
	}
	return nil
}

// WithSigmaRange sets the range of the coarse common-width search.
func WithSigmaRange(min, max float64) Option {
	return func(c *config) {
		c.minSigma, c.maxSigma = min, max
	}
}

// WithSearchPoints sets the number of coarse search points.
func WithSearchPoints(n int) Option {
	return func(c *config) {
		c.searchPoints = n
	}
}

// WithRefineIterations sets the iteration budget of the per-input refinement.
// Zero skips refinement and keeps the common width.
func WithRefineIterations(n int) Option {
	return func(c *config) {
		c.refineIterations = n
	}
}

// WithMinimizer sets the refinement minimizer. Defaults to NelderMead.
func WithMinimizer(m minimize.Minimizer) Option {
	return func(c *config) {
		c.minimizer = m
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
