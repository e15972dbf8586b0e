package ensemble

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/scigo-combine/minimize"
	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

const (
	// weightFloor bounds the divisor when normalizing weights and seeds the
	// error accumulators of Weighted.
	weightFloor = 1e-60
	// negativePenalty scales the cost of every negative weight so that any
	// violation dominates the squared error.
	negativePenalty = 1e30
)

// normalizeWeights writes w / max(Σw, weightFloor) into dst and returns dst.
func normalizeWeights(dst, w []float64) []float64 {
	sum := errors.FloorDivisor(floats.Sum(w), weightFloor)
	for j, v := range w {
		dst[j] = v / sum
	}
	return dst
}

// negativityPenalty returns Σ -negativePenalty*w_j over the negative w_j.
func negativityPenalty(w []float64) float64 {
	var p float64
	for _, v := range w {
		if v < 0 {
			p -= negativePenalty * v
		}
	}
	return p
}

// unbiasedObjective returns the penalized squared error of the normalized
// combination w / Σw over the design matrix. The returned function is bound
// to dm and must not be shared between goroutines.
func unbiasedObjective(dm *DesignMatrix) minimize.Func {
	n, m := dm.Dims()
	wn := make([]float64, m)
	t := dm.T.RawVector()
	return func(w []float64) float64 {
		normalizeWeights(wn, w)
		var sse float64
		for i := 0; i < n; i++ {
			diff := floats.Dot(dm.P.RawRowView(i), wn) - t.Data[i*t.Inc]
			sse += diff * diff
		}
		return sse + negativityPenalty(w)
	}
}

// biasedObjective returns the penalized squared error of intercept + w·P,
// where w has m+1 entries and the intercept is last. Only the first m
// entries are penalized.
func biasedObjective(dm *DesignMatrix) minimize.Func {
	n, m := dm.Dims()
	t := dm.T.RawVector()
	return func(w []float64) float64 {
		coef, intercept := w[:m], w[m]
		var sse float64
		for i := 0; i < n; i++ {
			diff := intercept + floats.Dot(dm.P.RawRowView(i), coef) - t.Data[i*t.Inc]
			sse += diff * diff
		}
		return sse + negativityPenalty(coef)
	}
}
