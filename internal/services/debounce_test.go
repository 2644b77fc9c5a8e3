package services

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_FiresAfterDelay(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	fired := make(chan struct{})

	d.Trigger(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("debounced function never fired")
	}
}

func TestDebouncer_RestartsOnEachTrigger(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	var calls int32

	// Rapid re-triggers within the delay must collapse into a single run.
	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestDebouncer_CancelDropsPendingRun(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int32

	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("calls = %d, want 0 after Cancel", got)
	}
}
