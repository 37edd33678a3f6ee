package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrBudgetExhausted = errors.New("request budget exhausted")

// RequestBudget caps upstream calls per UTC day. A call first reserves a slot, then
// either commits it (the call reached upstream) or releases it. used+inflight never
// exceeds the limit, so used never does either.
type RequestBudget struct {
	mu sync.Mutex

	limit       int
	used        int
	inflight    int
	windowStart time.Time
	now         func() time.Time
}

func NewRequestBudget(limit int) *RequestBudget {
	if limit < 0 {
		limit = 0
	}
	b := &RequestBudget{
		limit: limit,
		now:   time.Now,
	}
	b.windowStart = dayStart(b.now())
	return b
}

// Reserve takes a slot or fails fast with ErrBudgetExhausted.
func (b *RequestBudget) Reserve() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	if b.used+b.inflight >= b.limit {
		return ErrBudgetExhausted
	}
	b.inflight++
	return nil
}

func (b *RequestBudget) Commit() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inflight > 0 {
		b.inflight--
	}
	if b.used < b.limit {
		b.used++
	}
}

func (b *RequestBudget) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inflight > 0 {
		b.inflight--
	}
}

// Exhaust marks the window as spent, used when upstream reports its own quota is gone.
func (b *RequestBudget) Exhaust() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	b.used = b.limit
}

func (b *RequestBudget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	return b.used
}

func (b *RequestBudget) Limit() int {
	return b.limit
}

func (b *RequestBudget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	remaining := b.limit - b.used
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetsAt is the start of the next UTC day.
func (b *RequestBudget) ResetsAt() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.rollLocked()
	return b.windowStart.Add(24 * time.Hour)
}

func (b *RequestBudget) rollLocked() {
	start := dayStart(b.now())
	if start.After(b.windowStart) {
		b.windowStart = start
		b.used = 0
	}
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
