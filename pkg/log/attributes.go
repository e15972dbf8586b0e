// Package log defines standard attribute keys for combiner operations.
//
// Using the same keys everywhere keeps fit logs from different combiners
// comparable: a query on metrics.loss returns the final objective of every
// constrained fit regardless of which strategy produced it.
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the combiner or base model type.
	// Examples: "Unbiased", "GenReg", "MLFN"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "train"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is logging.
	// Examples: "ensemble.unbiased", "grnn", "experiment"
	ComponentKey = "ml.component"
)

// Data Shape
const (
	// SamplesKey is the number of training cases.
	SamplesKey = "data.samples"

	// FeaturesKey is the input dimension of the base predictors.
	FeaturesKey = "data.features"

	// ModelsKey is the number of predictors in the set being combined.
	ModelsKey = "ensemble.models"
)

// Optimization and Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records an objective or error value.
	LossKey = "metrics.loss"

	// IterationKey records an iteration count (optimizer iterations, experiment tries).
	IterationKey = "training.iteration"

	// EvaluationsKey records the number of objective evaluations.
	EvaluationsKey = "training.evaluations"

	// ConvergedKey reports whether an optimizer met its convergence test.
	ConvergedKey = "training.converged"

	// AlgorithmKey names the optimizer used for a fit.
	AlgorithmKey = "training.algorithm"

	// WeightsKey records fitted combination weights.
	WeightsKey = "ensemble.weights"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code.
	ErrorCodeKey = "error.code"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationTrain   = "train"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorConvergence       = "CONVERGENCE_FAILURE"
)
