package resilience

import (
	"context"
	"sync"
	"time"
)

// Throttle enforces a minimum spacing between outbound calls. Each caller reserves
// the next free slot under the lock, then waits for it outside the lock, so
// concurrent callers queue instead of bursting.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	next     time.Time
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

func NewThrottle(interval time.Duration) *Throttle {
	if interval < 0 {
		interval = 0
	}
	return &Throttle{
		interval: interval,
		now:      time.Now,
		after:    time.After,
	}
}

func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Wait blocks until the caller's slot; a cancelled ctx returns its error. The slot
// stays consumed either way so the spacing holds for callers already queued.
func (t *Throttle) Wait(ctx context.Context) error {
	delay := t.reserve()
	if delay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.after(delay):
		return nil
	}
}

func (t *Throttle) reserve() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	slot := t.next
	if slot.Before(now) {
		slot = now
	}
	t.next = slot.Add(t.interval)
	return slot.Sub(now)
}
