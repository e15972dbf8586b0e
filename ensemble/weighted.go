package ensemble

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
	"github.com/YuminosukeSato/scigo-combine/pkg/log"
)

// Weighted weights each predictor by the reciprocal of its squared error on
// the training set, normalized to sum to one. The in-sample error is used
// as the variance estimate, which favors overfit predictors.
type Weighted struct {
	base
	weights []float64
}

// NewWeighted returns an unfitted Weighted over preds.
func NewWeighted(preds model.PredictorSet, opts ...Option) (*Weighted, error) {
	b, err := newBase("Weighted", preds, opts)
	if err != nil {
		return nil, err
	}
	return &Weighted{base: b}, nil
}

// Fit accumulates each predictor's squared error, starting from weightFloor
// so that a perfect predictor gets a finite weight.
func (w *Weighted) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Weighted.Fit")

	dm, err := w.design(X, y)
	if err != nil {
		return err
	}
	n, m := dm.Dims()

	sse := make([]float64, m)
	for j := range sse {
		sse[j] = weightFloor
	}
	for i := 0; i < n; i++ {
		row := dm.P.RawRowView(i)
		t := dm.T.AtVec(i)
		for j, p := range row {
			diff := p - t
			sse[j] += diff * diff
		}
	}

	weights := make([]float64, m)
	for j := range weights {
		weights[j] = 1 / sse[j]
	}
	floats.Scale(1/floats.Sum(weights), weights)
	w.weights = weights

	return w.finish(X, log.WeightsKey, w.weights)
}

// PredictOne implements model.Predictor.
func (w *Weighted) PredictOne(x []float64) (float64, error) {
	out, err := w.outputs("PredictOne", x)
	if err != nil {
		return 0, err
	}
	return floats.Dot(out, w.weights), nil
}

// Predict implements model.BatchPredictor.
func (w *Weighted) Predict(X mat.Matrix) (mat.Matrix, error) {
	return w.predictRows(w, X)
}

// Weights returns a copy of the fitted weights.
func (w *Weighted) Weights() []float64 {
	return append([]float64(nil), w.weights...)
}
