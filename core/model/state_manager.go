// Package model provides the predictor contract and fitted-state tracking
// shared by the combiners and the base models.
package model

import (
	"sync"

	"github.com/YuminosukeSato/scigo-combine/pkg/errors"
)

// StateManager tracks the one-way Unfit -> Fitted transition of a model in a
// thread-safe manner. A fitted model is never reset; refitting requires a new
// instance.
type StateManager struct {
	mu sync.RWMutex

	name      string
	fitted    bool
	nFeatures int
	nSamples  int
}

// NewStateManager creates a StateManager for the named model. The name is
// used in NotFittedError messages.
func NewStateManager(name string) *StateManager {
	return &StateManager{name: name}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// MarkFitted records the dimensions seen during fitting and moves the model
// to the Fitted state. It returns ErrAlreadyFitted if the model was already
// fitted.
func (s *StateManager) MarkFitted(nFeatures, nSamples int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fitted {
		return errors.WithStack(errors.ErrAlreadyFitted)
	}
	s.fitted = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
	return nil
}

// GetDimensions returns the number of features and samples seen during fitting.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// RequireFitted returns a NotFittedError if the model has not been fitted.
func (s *StateManager) RequireFitted(method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(s.name, method)
	}
	return nil
}

// RequireUnfitted returns ErrAlreadyFitted if the model has been fitted.
func (s *StateManager) RequireUnfitted() error {
	if s.IsFitted() {
		return errors.WithStack(errors.ErrAlreadyFitted)
	}
	return nil
}

// RequireInputDim checks that x has the feature count seen during fitting.
func (s *StateManager) RequireInputDim(op string, got int) error {
	nFeatures, _ := s.GetDimensions()
	if got != nFeatures {
		return errors.NewDimensionError(op, nFeatures, got, 1)
	}
	return nil
}
