package model

import "gonum.org/v1/gonum/mat"

// Transformer learns a data transformation and applies it. The GRNN uses
// one to standardize its inputs.
type Transformer interface {
	// Fit learns the transformation parameters from X.
	Fit(X mat.Matrix) error

	// Transform applies the learned transformation to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform calls Fit and then Transform on X.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
