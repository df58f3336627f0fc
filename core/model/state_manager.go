// Package model provides state management and shared interfaces for
// machine learning models.
package model

import (
	"fmt"
	"sync"
)

// StateManager manages the fitted state of a model in a thread-safe manner.
// Models hold one by composition; the transition is one-way, from untrained
// to fitted.
type StateManager struct {
	Fitted bool // Public for serialization
	mu     sync.RWMutex

	// Optional metadata - Public for serialization
	NFeatures int
	NSamples  int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		Fitted: false,
	}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// SetDimensions sets the number of features and samples seen during fitting.
func (s *StateManager) SetDimensions(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NFeatures = nFeatures
	s.NSamples = nSamples
}

// GetDimensions returns the number of features and samples seen during fitting.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NFeatures, s.NSamples
}

// RequireFitted returns an error if the model has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("model has not been fitted yet. Call Fit() first")
	}
	return nil
}
