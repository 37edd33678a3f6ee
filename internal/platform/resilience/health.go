package resilience

import "sync"

type HealthState string

const (
	HealthStateHealthy  HealthState = "healthy"
	HealthStateDegraded HealthState = "degraded"
)

// HealthTracker flags a dependency as degraded after repeated rate-limit backoffs.
// Any success clears it.
type HealthTracker struct {
	mu sync.Mutex

	threshold int
	backoffs  int
	total     int
	onChange  func(HealthState)
}

func NewHealthTracker(threshold int) *HealthTracker {
	if threshold < 1 {
		threshold = 1
	}
	return &HealthTracker{threshold: threshold}
}

func (h *HealthTracker) OnChange(fn func(HealthState)) {
	h.mu.Lock()
	h.onChange = fn
	h.mu.Unlock()
}

func (h *HealthTracker) RecordBackoff() {
	h.mu.Lock()
	defer h.mu.Unlock()

	before := h.stateLocked()
	h.backoffs++
	h.total++
	h.notifyLocked(before)
}

func (h *HealthTracker) RecordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()

	before := h.stateLocked()
	h.backoffs = 0
	h.notifyLocked(before)
}

func (h *HealthTracker) State() HealthState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stateLocked()
}

func (h *HealthTracker) Degraded() bool {
	return h.State() == HealthStateDegraded
}

// TotalBackoffs counts every backoff since start, not only the current streak.
func (h *HealthTracker) TotalBackoffs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

func (h *HealthTracker) stateLocked() HealthState {
	if h.backoffs >= h.threshold {
		return HealthStateDegraded
	}
	return HealthStateHealthy
}

func (h *HealthTracker) notifyLocked(before HealthState) {
	after := h.stateLocked()
	if after != before && h.onChange != nil {
		h.onChange(after)
	}
}
