package experiment

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/scigo-combine/ensemble"
)

// Report accumulates test errors across tries.
type Report struct {
	Tries int
	Kinds []ensemble.Kind

	rawSum    []float64
	methodSum []float64
}

func newReport(models int, kinds []ensemble.Kind) *Report {
	return &Report{
		Kinds:     kinds,
		rawSum:    make([]float64, models),
		methodSum: make([]float64, len(kinds)),
	}
}

func (r *Report) add(res tryResult) {
	r.Tries++
	floats.Add(r.rawSum, res.raw)
	floats.Add(r.methodSum, res.methods)
}

func (r *Report) mean(sum []float64) []float64 {
	out := make([]float64, len(sum))
	if r.Tries == 0 {
		return out
	}
	floats.ScaleTo(out, 1/float64(r.Tries), sum)
	return out
}

// RawErrors returns the mean test MSE of each base model.
func (r *Report) RawErrors() []float64 {
	return r.mean(r.rawSum)
}

// MeanRawError returns the mean over base models of RawErrors.
func (r *Report) MeanRawError() float64 {
	return stat.Mean(r.RawErrors(), nil)
}

// MethodError returns the mean test MSE of the combiner kind, or false when
// kind was not evaluated.
func (r *Report) MethodError(kind ensemble.Kind) (float64, bool) {
	for i, k := range r.Kinds {
		if k == kind {
			return r.mean(r.methodSum)[i], true
		}
	}
	return 0, false
}

// WriteTo prints the report as a table.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Did %5d    Raw errors:", r.Tries)
	for _, e := range r.RawErrors() {
		fmt.Fprintf(&b, "  %.4f", e)
	}
	fmt.Fprintf(&b, "\n%21s = %8.5f\n", "Mean raw error", r.MeanRawError())
	for i, e := range r.mean(r.methodSum) {
		fmt.Fprintf(&b, "%21s = %8.5f\n", r.Kinds[i].String()+" error", e)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
