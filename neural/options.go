package neural

import (
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Option configures an MLFN.
type Option func(*config)

type config struct {
	hidden        int
	maxIterations int
	initScale     float64
	seed          uint64
	logger        log.Logger
}

func defaultConfig() config {
	return config{
		hidden:        4,
		maxIterations: 200,
		initScale:     0.5,
		seed:          1,
	}
}

func (c *config) validate() error {
	if c.hidden <= 0 {
		return errors.NewValidationError("hidden", "must be positive", c.hidden)
	}
	if c.maxIterations <= 0 {
		return errors.NewValidationError("max_iterations", "must be positive", c.maxIterations)
	}
	if c.initScale <= 0 {
		return errors.NewValidationError("init_scale", "must be positive", c.initScale)
	}
	return nil
}

// WithHidden sets the number of hidden units. Defaults to 4.
func WithHidden(h int) Option {
	return func(c *config) {
		c.hidden = h
	}
}

// WithMaxIterations sets the L-BFGS iteration budget. Defaults to 200.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIterations = n
	}
}

// WithInitScale sets the standard deviation of the initial weights.
func WithInitScale(s float64) Option {
	return func(c *config) {
		c.initScale = s
	}
}

// WithSeed sets the seed of the initial weights.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
