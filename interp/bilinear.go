// Package interp interpolates functions of two variables tabulated on a
// rectangular grid.
package interp

import (
	"sort"

	gi "gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// Bilinear interpolates z = f(x, y) tabulated on a grid.
//
// Inputs outside the grid are clamped to its edges. Quadratic mode fits a
// 3x3 Lagrange block; otherwise the enclosing cell is interpolated bilinearly.
type Bilinear struct {
	xs, ys    []float64
	z         *mat.Dense
	rows      []gi.PiecewiseLinear
	quadratic bool
}

// NewBilinear builds an interpolator over ascending axes xs and ys. z is
// len(xs)×len(ys), so y changes fastest in its raw data.
func NewBilinear(xs, ys []float64, z mat.Matrix, quadratic bool) (*Bilinear, error) {
	minPoints := 2
	if quadratic {
		minPoints = 3
	}
	if len(xs) < minPoints {
		return nil, errors.NewValidationError("xs", "too few grid points", len(xs))
	}
	if len(ys) < minPoints {
		return nil, errors.NewValidationError("ys", "too few grid points", len(ys))
	}
	if !strictlyAscending(xs) {
		return nil, errors.NewValidationError("xs", "must be strictly ascending", xs)
	}
	if !strictlyAscending(ys) {
		return nil, errors.NewValidationError("ys", "must be strictly ascending", ys)
	}
	r, c := z.Dims()
	if r != len(xs) {
		return nil, errors.NewDimensionError("NewBilinear", len(xs), r, 0)
	}
	if c != len(ys) {
		return nil, errors.NewDimensionError("NewBilinear", len(ys), c, 1)
	}

	b := &Bilinear{
		xs:        append([]float64(nil), xs...),
		ys:        append([]float64(nil), ys...),
		z:         mat.DenseCopyOf(z),
		quadratic: quadratic,
	}
	if !quadratic {
		b.rows = make([]gi.PiecewiseLinear, r)
		for i := range b.rows {
			if err := b.rows[i].Fit(b.ys, b.z.RawRowView(i)); err != nil {
				return nil, errors.Wrapf(err, "NewBilinear: row %d", i)
			}
		}
	}
	return b, nil
}

func strictlyAscending(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if !(v[i] > v[i-1]) {
			return false
		}
	}
	return true
}

// Evaluate returns the interpolated value at (x, y).
func (b *Bilinear) Evaluate(x, y float64) float64 {
	x = clamp(x, b.xs)
	y = clamp(y, b.ys)
	xlo, xhi := bracket(b.xs, x)
	if !b.quadratic {
		t := (x - b.xs[xlo]) / (b.xs[xhi] - b.xs[xlo])
		return (1-t)*b.rows[xlo].Predict(y) + t*b.rows[xhi].Predict(y)
	}

	ix := widen(b.xs, x, xlo, xhi)
	ylo, yhi := bracket(b.ys, y)
	iy := widen(b.ys, y, ylo, yhi)
	cx := lagrange3(b.xs, ix, x)
	cy := lagrange3(b.ys, iy, y)
	var v float64
	for j, ky := range iy {
		var zx float64
		for i, kx := range ix {
			zx += cx[i] * b.z.At(kx, ky)
		}
		v += cy[j] * zx
	}
	return v
}

func clamp(v float64, axis []float64) float64 {
	return errors.ClipValue(v, axis[0], axis[len(axis)-1])
}

// bracket returns lo, lo+1 with axis[lo] <= v < axis[lo+1], the last cell
// for v at the upper end.
func bracket(axis []float64, v float64) (lo, hi int) {
	k := sort.Search(len(axis), func(i int) bool { return axis[i] > v })
	lo = k - 1
	if lo < 0 {
		lo = 0
	}
	if lo > len(axis)-2 {
		lo = len(axis) - 2
	}
	return lo, lo + 1
}

// widen extends the bracketing pair to three points, stepping toward the
// side nearer v unless an edge forces the direction.
func widen(axis []float64, v float64, lo, hi int) [3]int {
	switch {
	case lo == 0:
		return [3]int{lo, hi, hi + 1}
	case hi == len(axis)-1:
		return [3]int{lo - 1, lo, hi}
	case v-axis[lo] < axis[hi]-v:
		return [3]int{lo - 1, lo, hi}
	default:
		return [3]int{lo, hi, hi + 1}
	}
}

// lagrange3 returns the quadratic Lagrange basis weights of the points
// axis[idx[0..2]] evaluated at v.
func lagrange3(axis []float64, idx [3]int, v float64) [3]float64 {
	var c [3]float64
	for i := range c {
		c[i] = 1
		for j := range idx {
			if j == i {
				continue
			}
			c[i] *= (v - axis[idx[j]]) / (axis[idx[i]] - axis[idx[j]])
		}
	}
	return c
}
