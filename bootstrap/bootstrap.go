// Package bootstrap estimates the bias and variance of a statistic by
// resampling cases with replacement.
package bootstrap

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// Statistic computes a scalar from paired samples.
type Statistic func(x, y []float64) float64

// Estimate is the result of BiasVariance.
type Estimate struct {
	// Raw is the statistic on the original sample.
	Raw float64
	// Bias is mean(bootstrap statistics) - Raw.
	Bias float64
	// Variance is the sample variance of the bootstrap statistics.
	Variance float64
}

// Resample returns n indices in [0, n) drawn uniformly with replacement.
func Resample(n int, rng *rand.Rand) []int {
	u := distuv.Uniform{Min: 0, Max: float64(n), Src: rng}
	idx := make([]int, n)
	for i := range idx {
		k := int(u.Rand())
		// Rand can round up to Max
		if k >= n {
			k = n - 1
		}
		idx[i] = k
	}
	return idx
}

// BiasVariance draws nboot resamples of the paired sample (x, y), applies
// fn to each and reports the bias and variance of fn.
func BiasVariance(x, y []float64, fn Statistic, nboot int, rng *rand.Rand) (Estimate, error) {
	n := len(x)
	if n == 0 {
		return Estimate{}, errors.NewModelError("BiasVariance", "empty data", errors.ErrEmptyData)
	}
	if len(y) != n {
		return Estimate{}, errors.NewDimensionError("BiasVariance", n, len(y), 0)
	}
	if nboot < 2 {
		return Estimate{}, errors.NewValidationError("nboot", "must be at least 2", nboot)
	}
	if fn == nil || rng == nil {
		return Estimate{}, errors.NewValidationError("stat", "statistic and rng are required", nil)
	}

	raw := fn(x, y)
	xb := make([]float64, n)
	yb := make([]float64, n)
	boot := make([]float64, nboot)
	for b := range boot {
		for i, k := range Resample(n, rng) {
			xb[i], yb[i] = x[k], y[k]
		}
		boot[b] = fn(xb, yb)
	}

	mean, variance := stat.MeanVariance(boot, nil)
	return Estimate{Raw: raw, Bias: mean - raw, Variance: variance}, nil
}

// Slope returns the ordinary least-squares slope of y on x, or 0 when x has
// no variance.
func Slope(x, y []float64) float64 {
	if len(x) < 2 || stat.Variance(x, nil) == 0 {
		return 0
	}
	_, beta := stat.LinearRegression(x, y, nil, false)
	return beta
}
