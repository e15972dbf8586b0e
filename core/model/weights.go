package model

import (
	"encoding/json"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// WeightsVersion is the version of the Weights JSON format.
const WeightsVersion = "1"

// Weights holds the fitted coefficients of a linear combination for serialization.
type Weights struct {
	// ModelType is the combiner kind, e.g. "Unbiased".
	ModelType string `json:"model_type"`

	// Version is the format version, checked on load.
	Version string `json:"version"`

	// Coefficients holds one weight per predictor.
	Coefficients []float64 `json:"coefficients"`

	// Intercept is 0 for combiners without one.
	Intercept float64 `json:"intercept"`

	// Hyperparameters records the fit settings.
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`

	// Metadata carries extras such as the final optimizer loss.
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	// IsFitted reports whether the source model was fitted.
	IsFitted bool `json:"is_fitted"`
}

// WeightExporter is implemented by models that can export their fitted weights.
type WeightExporter interface {
	ExportWeights() (*Weights, error)
}

// ToJSON serializes w as indented JSON.
func (w *Weights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

// FromJSON decodes data into w and validates the result.
func (w *Weights) FromJSON(data []byte) error {
	if err := json.Unmarshal(data, w); err != nil {
		return errors.Wrap(err, "Weights.FromJSON")
	}
	return w.Validate()
}

// Validate checks that w is complete and has a supported version.
func (w *Weights) Validate() error {
	if w.ModelType == "" {
		return errors.NewValidationError("model_type", "is required", w.ModelType)
	}
	if w.Version != WeightsVersion {
		return errors.NewValidationError("version", "unsupported version", w.Version)
	}
	if !w.IsFitted && len(w.Coefficients) > 0 {
		return errors.NewValidationError("coefficients", "unfitted model should not have coefficients", len(w.Coefficients))
	}
	if w.IsFitted && len(w.Coefficients) == 0 {
		return errors.NewValidationError("coefficients", "fitted model must have coefficients", 0)
	}
	return nil
}

// Clone returns a deep copy of w.
func (w *Weights) Clone() *Weights {
	clone := &Weights{
		ModelType:    w.ModelType,
		Version:      w.Version,
		Intercept:    w.Intercept,
		IsFitted:     w.IsFitted,
		Coefficients: append([]float64(nil), w.Coefficients...),
	}
	if w.Hyperparameters != nil {
		clone.Hyperparameters = make(map[string]interface{}, len(w.Hyperparameters))
		for k, v := range w.Hyperparameters {
			clone.Hyperparameters[k] = v
		}
	}
	if w.Metadata != nil {
		clone.Metadata = make(map[string]interface{}, len(w.Metadata))
		for k, v := range w.Metadata {
			clone.Metadata[k] = v
		}
	}
	return clone
}
