package resilience

import "testing"

func TestHealthTracker_DegradesAfterRepeatedBackoffs(t *testing.T) {
	t.Parallel()

	h := NewHealthTracker(2)
	var changes []HealthState
	h.OnChange(func(s HealthState) { changes = append(changes, s) })

	h.RecordBackoff()
	if h.Degraded() {
		t.Fatalf("one backoff should not degrade")
	}
	h.RecordBackoff()
	if !h.Degraded() {
		t.Fatalf("expected degraded after threshold")
	}

	h.RecordSuccess()
	if got := h.State(); got != HealthStateHealthy {
		t.Fatalf("expected success to clear state, got %s", got)
	}
	if got := h.TotalBackoffs(); got != 2 {
		t.Fatalf("unexpected total backoffs: got=%d want=2", got)
	}
	if len(changes) != 2 || changes[0] != HealthStateDegraded || changes[1] != HealthStateHealthy {
		t.Fatalf("unexpected change notifications: %v", changes)
	}
}
