package ensemble

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/grnn"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// KernelRegressor is a nonparametric regression engine trained case by case.
type KernelRegressor interface {
	// AddCase appends a training case: nin inputs followed by the target.
	AddCase(c []float64) error
	// Train fits the engine to the cases added so far.
	Train() error
	// PredictOne returns the estimate for nin inputs.
	PredictOne(x []float64) (float64, error)
}

// KernelRegressorFactory builds an untrained engine for nin inputs.
type KernelRegressorFactory func(nin int) KernelRegressor

func defaultKernelRegressor(logger log.Logger) KernelRegressorFactory {
	return func(nin int) KernelRegressor {
		return grnn.New(nin, grnn.WithLogger(logger))
	}
}

// GenReg feeds the vector of predictor outputs to a kernel regression engine
// and returns the engine's estimate unchanged.
type GenReg struct {
	base
	engine KernelRegressor
}

// NewGenReg returns an unfitted GenReg over preds.
func NewGenReg(preds model.PredictorSet, opts ...Option) (*GenReg, error) {
	b, err := newBase("GenReg", preds, opts)
	if err != nil {
		return nil, err
	}
	return &GenReg{base: b}, nil
}

// Fit trains the engine on rows [P[i][0..m-1], T[i]].
func (g *GenReg) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GenReg.Fit")

	dm, err := g.design(X, y)
	if err != nil {
		return err
	}
	n, m := dm.Dims()

	factory := g.cfg.kernel
	if factory == nil {
		factory = defaultKernelRegressor(g.logger)
	}
	engine := factory(m)
	if engine == nil {
		return errors.NewValidationError("kernel_regressor", "factory returned nil", nil)
	}

	c := make([]float64, m+1)
	for i := 0; i < n; i++ {
		copy(c, dm.P.RawRowView(i))
		c[m] = dm.T.AtVec(i)
		if err := engine.AddCase(c); err != nil {
			return errors.Wrapf(err, "GenReg.Fit: case %d", i)
		}
	}
	if err := engine.Train(); err != nil {
		return errors.Wrap(err, "GenReg.Fit")
	}
	g.engine = engine

	return g.finish(X, log.ModelsKey, m)
}

// PredictOne implements model.Predictor.
func (g *GenReg) PredictOne(x []float64) (float64, error) {
	out, err := g.outputs("PredictOne", x)
	if err != nil {
		return 0, err
	}
	return g.engine.PredictOne(out)
}

// Predict implements model.BatchPredictor.
func (g *GenReg) Predict(X mat.Matrix) (mat.Matrix, error) {
	return g.predictRows(g, X)
}
