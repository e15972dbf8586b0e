// Package experiment compares the ensemble combiners on a synthetic
// regression problem with deliberately flawed base models.
//
// Each try draws a training set and a ten times larger test set from
//
//	y = sin(x1) - x2^2 + sqrt(Variance) * N(0, 1),   x1, x2 ~ N(0, 1)
//
// trains Models networks on it (the fourth on a worthless target, the fifth
// on a biased one) plus Models networks on bootstrap resamples, and records
// the test MSE of every base model and every combiner.
package experiment

import (
	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// Config controls one experiment.
type Config struct {
	// Samples is the training set size. The test set has 10*Samples cases.
	Samples int
	// Models is the number of base networks, and of bagged networks.
	Models int
	// Tries is the number of independent repetitions.
	Tries int
	// Variance is the noise variance added to the target.
	Variance float64
	// Hidden is the number of hidden units per network.
	Hidden int
	// TrainIterations bounds network training.
	TrainIterations int
	// CombinerIterations bounds the Unbiased and Biased optimizers.
	CombinerIterations int
	// Seed makes a run reproducible.
	Seed uint64
}

// DefaultConfig returns a small but representative setup.
func DefaultConfig() Config {
	return Config{
		Samples:            50,
		Models:             5,
		Tries:              10,
		Variance:           0.1,
		Hidden:             2,
		TrainIterations:    200,
		CombinerIterations: minimize.DefaultMaxIterations,
		Seed:               1,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return errors.NewValidationError("samples", "must be positive", c.Samples)
	}
	if c.Models <= 0 {
		return errors.NewValidationError("models", "must be positive", c.Models)
	}
	if c.Tries <= 0 {
		return errors.NewValidationError("tries", "must be positive", c.Tries)
	}
	if c.Variance < 0 {
		return errors.NewValidationError("variance", "must be non-negative", c.Variance)
	}
	if c.Hidden <= 0 {
		return errors.NewValidationError("hidden", "must be positive", c.Hidden)
	}
	if c.TrainIterations <= 0 {
		return errors.NewValidationError("train_iterations", "must be positive", c.TrainIterations)
	}
	if c.CombinerIterations <= 0 {
		return errors.NewValidationError("combiner_iterations", "must be positive", c.CombinerIterations)
	}
	return nil
}
