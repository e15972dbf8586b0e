package ensemble

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/bootstrap"
	"github.com/YuminosukeSato/scigo-combine/core/model"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// Trainer fits a new predictor on X, y.
type Trainer func(X, y mat.Matrix) (model.Predictor, error)

// TrainBootstrapSet trains k predictors, each on a resample of the rows of
// X, y drawn with replacement. The result is the predictor set for Bagged.
func TrainBootstrapSet(X, y mat.Matrix, k int, train Trainer, rng *rand.Rand) (model.PredictorSet, error) {
	if k <= 0 {
		return nil, errors.NewValidationError("k", "must be positive", k)
	}
	if train == nil {
		return nil, errors.NewValidationError("trainer", "must not be nil", nil)
	}
	if rng == nil {
		return nil, errors.NewValidationError("rng", "must not be nil", nil)
	}
	n, nin, err := checkTrainingSet("TrainBootstrapSet", X, y)
	if err != nil {
		return nil, err
	}

	set := make(model.PredictorSet, k)
	for b := 0; b < k; b++ {
		idx := bootstrap.Resample(n, rng)
		Xb := mat.NewDense(n, nin, nil)
		yb := mat.NewDense(n, 1, nil)
		for i, src := range idx {
			for j := 0; j < nin; j++ {
				Xb.Set(i, j, X.At(src, j))
			}
			yb.Set(i, 0, y.At(src, 0))
		}

		p, err := train(Xb, yb)
		if err != nil {
			return nil, errors.Wrapf(err, "bootstrap predictor %d", b)
		}
		set[b] = p
	}
	return set, nil
}
