// Package ensemble combines the scalar outputs of several trained predictors
// into one prediction.
//
// Seven strategies share the Combiner contract:
//
//	Average        mean of the predictor outputs
//	Unconstrained  least-squares weights plus intercept
//	Unbiased       nonnegative weights summing to one
//	Biased         nonnegative weights plus a free intercept
//	Weighted       weights proportional to 1 / training SSE
//	Bagged         Average over predictors trained on bootstrap resamples
//	GenReg         kernel regression over the vector of predictor outputs
//
// Every combiner takes its predictor set at construction, is fitted exactly
// once and is immutable afterwards:
//
//	c, err := ensemble.NewUnbiased(preds)
//	if err != nil { ... }
//	if err := c.Fit(X, y); err != nil { ... }
//	v, err := c.PredictOne(x)
package ensemble

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Combiner is a fitted-once combination rule over a fixed predictor set.
type Combiner interface {
	model.Fitter
	model.Predictor
	model.BatchPredictor

	// Name returns the strategy name.
	Name() string
}

// Kind enumerates the combination strategies.
type Kind int

const (
	KindAverage Kind = iota
	KindUnconstrained
	KindUnbiased
	KindBiased
	KindWeighted
	KindBagged
	KindGenReg
)

var kindNames = [...]string{
	KindAverage:       "Average",
	KindUnconstrained: "Unconstrained",
	KindUnbiased:      "Unbiased",
	KindBiased:        "Biased",
	KindWeighted:      "Weighted",
	KindBagged:        "Bagged",
	KindGenReg:        "GenReg",
}

// Kinds returns every strategy in declaration order.
func Kinds() []Kind {
	return []Kind{KindAverage, KindUnconstrained, KindUnbiased, KindBiased, KindWeighted, KindBagged, KindGenReg}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the given name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}
	}
	return 0, errors.NewValidationError("kind", "unknown combiner", s)
}

// New constructs an unfitted combiner of the given kind.
func New(kind Kind, preds model.PredictorSet, opts ...Option) (Combiner, error) {
	switch kind {
	case KindAverage:
		return NewAverage(preds, opts...)
	case KindUnconstrained:
		return NewUnconstrained(preds, opts...)
	case KindUnbiased:
		return NewUnbiased(preds, opts...)
	case KindBiased:
		return NewBiased(preds, opts...)
	case KindWeighted:
		return NewWeighted(preds, opts...)
	case KindBagged:
		return NewBagged(preds, opts...)
	case KindGenReg:
		return NewGenReg(preds, opts...)
	default:
		return nil, errors.NewValidationError("kind", "unknown combiner", int(kind))
	}
}

// FitCombiner constructs a combiner of the given kind and fits it on X, y.
func FitCombiner(kind Kind, X, y mat.Matrix, preds model.PredictorSet, opts ...Option) (Combiner, error) {
	c, err := New(kind, preds, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Fit(X, y); err != nil {
		return nil, err
	}
	return c, nil
}

// base carries what every strategy shares: the predictor set, the fitted
// state and the configuration.
type base struct {
	name   string
	preds  model.PredictorSet
	state  *model.StateManager
	cfg    config
	logger log.Logger
}

func newBase(name string, preds model.PredictorSet, opts []Option) (base, error) {
	if err := preds.Validate(); err != nil {
		return base{}, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return base{}, err
	}
	logger := cfg.logger
	if logger == nil {
		logger = log.GetLoggerWithName("ensemble")
	}
	return base{
		name:   name,
		preds:  preds,
		state:  model.NewStateManager(name),
		cfg:    cfg,
		logger: logger.With(log.ModelNameKey, name),
	}, nil
}

// Name returns the strategy name.
func (b *base) Name() string { return b.name }

// Predictors returns the predictor set the combiner was built over.
func (b *base) Predictors() model.PredictorSet { return b.preds }

// design checks the lifecycle and builds the design matrix for a fit.
func (b *base) design(X, y mat.Matrix) (*DesignMatrix, error) {
	if err := b.state.RequireUnfitted(); err != nil {
		return nil, err
	}
	dm, err := BuildDesignMatrix(X, y, b.preds)
	if err != nil {
		return nil, errors.Wrapf(err, "%s.Fit", b.name)
	}
	n, m := dm.Dims()
	b.logger.Debug("fit started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, n,
		log.ModelsKey, m,
	)
	return dm, nil
}

// finish moves the combiner to the fitted state.
func (b *base) finish(X mat.Matrix, fields ...any) error {
	n, nin := X.Dims()
	if err := b.state.MarkFitted(nin, n); err != nil {
		return err
	}
	b.logger.Debug("fit complete", append([]any{log.OperationKey, log.OperationFit}, fields...)...)
	return nil
}

// outputs returns every predictor's output on x for a fitted combiner.
func (b *base) outputs(method string, x []float64) ([]float64, error) {
	if err := b.state.RequireFitted(method); err != nil {
		return nil, err
	}
	if err := b.state.RequireInputDim(b.name+"."+method, len(x)); err != nil {
		return nil, err
	}
	return b.preds.Outputs(x, nil)
}

// predictRows applies c.PredictOne to each row of X.
func (b *base) predictRows(c model.Predictor, X mat.Matrix) (mat.Matrix, error) {
	if err := b.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	return model.PredictRows(c, X)
}
