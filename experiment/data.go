package experiment

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is a set of cases with two inputs and one target.
type Dataset struct {
	X *mat.Dense // n×2
	Y *mat.Dense // n×1
}

// Len returns the number of cases.
func (d Dataset) Len() int {
	n, _ := d.X.Dims()
	return n
}

// generate draws n cases of y = sin(x1) - x2^2 + std*e.
func generate(n int, std float64, normal distuv.Normal) Dataset {
	X := mat.NewDense(n, 2, nil)
	Y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x1, x2 := normal.Rand(), normal.Rand()
		X.Set(i, 0, x1)
		X.Set(i, 1, x2)
		Y.Set(i, 0, math.Sin(x1)-x2*x2+std*normal.Rand())
	}
	return Dataset{X: X, Y: Y}
}

// withTarget returns d with its targets replaced by f(i, y_i).
func (d Dataset) withTarget(f func(i int, y float64) float64) Dataset {
	n := d.Len()
	Y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		Y.Set(i, 0, f(i, d.Y.At(i, 0)))
	}
	return Dataset{X: d.X, Y: Y}
}
