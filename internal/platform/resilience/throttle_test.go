package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestThrottle_SpacesConsecutiveCalls(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	th := NewThrottle(2 * time.Second)
	th.now = func() time.Time { return now }

	var waits []time.Duration
	th.after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		ch := make(chan time.Time, 1)
		ch <- now.Add(d)
		return ch
	}

	for i := 0; i < 3; i++ {
		if err := th.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}

	want := []time.Duration{2 * time.Second, 4 * time.Second}
	if len(waits) != len(want) {
		t.Fatalf("unexpected waits: got=%v want=%v", waits, want)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Fatalf("wait %d: got=%s want=%s", i, waits[i], want[i])
		}
	}

	now = now.Add(time.Minute)
	waits = nil
	if err := th.Wait(context.Background()); err != nil {
		t.Fatalf("wait after idle: %v", err)
	}
	if len(waits) != 0 {
		t.Fatalf("idle throttle should not wait, got=%v", waits)
	}
}

func TestThrottle_WaitObservesContext(t *testing.T) {
	t.Parallel()

	th := NewThrottle(time.Hour)
	if err := th.Wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := th.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
