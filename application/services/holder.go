package services

import (
	"sync"

	pkgerrors "docgraph/pkg/errors"
)

// GraphHolder hands the latest finished build to readers. Each run replaces
// the previous result wholesale; a graph is never mutated after assembly, so
// readers can use the result without locking once they have it.
type GraphHolder struct {
	mu     sync.RWMutex
	result *BuildResult
}

// NewGraphHolder creates an empty holder
func NewGraphHolder() *GraphHolder {
	return &GraphHolder{}
}

// Set swaps in a freshly built result
func (h *GraphHolder) Set(result *BuildResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.result = result
}

// Get returns the current build, or an error when no run has finished yet
func (h *GraphHolder) Get() (*BuildResult, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.result == nil {
		return nil, pkgerrors.NewUnavailableError("graph")
	}
	return h.result, nil
}
