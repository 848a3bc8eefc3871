package scheduler

import (
	"sync"
	"time"
)

// Status is the recorded health of one component.
type Status struct {
	Healthy     bool
	LastCheck   time.Time
	LastSuccess time.Time
	LastError   error
	Message     string
}

// Health tracks the health of the daemon's components, keyed by name.
type Health struct {
	mu         sync.RWMutex
	components map[string]*Status
}

// NewHealth creates an empty health tracker.
func NewHealth() *Health {
	return &Health{components: make(map[string]*Status)}
}

// SetHealthy records a successful check for a component.
func (h *Health) SetHealthy(component, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	st := h.components[component]
	if st == nil {
		st = &Status{}
		h.components[component] = st
	}
	st.Healthy = true
	st.LastCheck = now
	st.LastSuccess = now
	st.LastError = nil
	st.Message = message
}

// SetUnhealthy records a failed check for a component.
func (h *Health) SetUnhealthy(component string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := h.components[component]
	if st == nil {
		st = &Status{}
		h.components[component] = st
	}
	st.Healthy = false
	st.LastCheck = time.Now()
	st.LastError = err
	st.Message = err.Error()
}

// GetStatus returns a copy of a component's status, or nil if unknown.
func (h *Health) GetStatus(component string) *Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	st, ok := h.components[component]
	if !ok {
		return nil
	}
	cp := *st
	return &cp
}

// IsOverallHealthy reports whether every tracked component is healthy.
func (h *Health) IsOverallHealthy() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, st := range h.components {
		if !st.Healthy {
			return false
		}
	}
	return true
}
