package ensemble

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Average predicts the arithmetic mean of the predictor outputs.
type Average struct {
	base
}

// NewAverage returns an unfitted Average over preds.
func NewAverage(preds model.PredictorSet, opts ...Option) (*Average, error) {
	return newAverage("Average", preds, opts)
}

func newAverage(name string, preds model.PredictorSet, opts []Option) (*Average, error) {
	b, err := newBase(name, preds, opts)
	if err != nil {
		return nil, err
	}
	return &Average{base: b}, nil
}

// Fit records the input dimension. No predictor is queried.
func (a *Average) Fit(X, y mat.Matrix) error {
	if err := a.state.RequireUnfitted(); err != nil {
		return err
	}
	if _, _, err := checkTrainingSet(a.name+".Fit", X, y); err != nil {
		return err
	}
	return a.finish(X, log.ModelsKey, len(a.preds))
}

// PredictOne implements model.Predictor.
func (a *Average) PredictOne(x []float64) (float64, error) {
	out, err := a.outputs("PredictOne", x)
	if err != nil {
		return 0, err
	}
	return stat.Mean(out, nil), nil
}

// Predict implements model.BatchPredictor.
func (a *Average) Predict(X mat.Matrix) (mat.Matrix, error) {
	return a.predictRows(a, X)
}

// Bagged is Average over a predictor set trained on bootstrap resamples of
// the training data. See TrainBootstrapSet.
type Bagged struct {
	*Average
}

// NewBagged returns an unfitted Bagged over preds.
func NewBagged(preds model.PredictorSet, opts ...Option) (*Bagged, error) {
	a, err := newAverage("Bagged", preds, opts)
	if err != nil {
		return nil, err
	}
	return &Bagged{Average: a}, nil
}

// Predict implements model.BatchPredictor.
func (b *Bagged) Predict(X mat.Matrix) (mat.Matrix, error) {
	return b.predictRows(b, X)
}
