package model

import "gonum.org/v1/gonum/mat"

// Fitter is a model that can be trained.
type Fitter interface {
	// Fit trains the model on X (n×nin) and y (n×1).
	Fit(X, y mat.Matrix) error
}

// Predictor maps one input vector to a scalar. It is the only capability
// the combiners depend on.
type Predictor interface {
	// PredictOne returns the prediction for x. It must be deterministic
	// for a fixed model state.
	PredictOne(x []float64) (float64, error)
}

// BatchPredictor predicts every row of a matrix.
type BatchPredictor interface {
	// Predict returns the predictions for the rows of X as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is a trainable model with single and batch prediction.
type Regressor interface {
	Fitter
	Predictor
	BatchPredictor
}

// PredictorFunc adapts an ordinary function to Predictor.
type PredictorFunc func(x []float64) (float64, error)

// PredictOne calls f(x).
func (f PredictorFunc) PredictOne(x []float64) (float64, error) {
	return f(x)
}

// PredictRows applies p to each row of X and returns an n×1 matrix. It backs
// the Predict methods of the Regressor implementations.
func PredictRows(p Predictor, X mat.Matrix) (mat.Matrix, error) {
	rows, cols := X.Dims()
	out := mat.NewDense(rows, 1, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, X)
		v, err := p.PredictOne(row)
		if err != nil {
			return nil, err
		}
		out.Set(i, 0, v)
	}
	return out, nil
}
