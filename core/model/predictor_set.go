package model

import (
	"fmt"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// PredictorSet is the ordered set of predictors a combiner merges. The caller
// owns the predictors; combiners only read them.
type PredictorSet []Predictor

// Len returns the number of predictors.
func (s PredictorSet) Len() int {
	return len(s)
}

// Validate checks that the set is non-empty and has no nil entries.
func (s PredictorSet) Validate() error {
	if len(s) == 0 {
		return errors.NewValidationError("predictors", "at least one predictor is required", 0)
	}
	for i, p := range s {
		if p == nil {
			return errors.NewValidationError("predictors", fmt.Sprintf("predictor %d is nil", i), nil)
		}
	}
	return nil
}

// Outputs writes the output of every predictor for x into dst and returns
// it, allocating when dst is too small. A panicking predictor is reported
// as a *errors.PanicError carrying its index.
func (s PredictorSet) Outputs(x []float64, dst []float64) ([]float64, error) {
	if cap(dst) < len(s) {
		dst = make([]float64, len(s))
	}
	dst = dst[:len(s)]
	for j, p := range s {
		err := errors.SafeExecute("PredictOne", func() error {
			v, err := p.PredictOne(x)
			dst[j] = v
			return err
		})
		if err != nil {
			return nil, errors.Wrapf(err, "predictor %d", j)
		}
	}
	return dst, nil
}
