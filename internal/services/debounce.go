package services

import (
	"sync"
	"time"
)

// Debouncer is a cancellable restartable timer. Each Trigger cancels any
// pending run and starts the delay over; the function fires only when the
// delay elapses uninterrupted. Cancellation is a first-class operation, not
// an implicit closure cleanup.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given delay
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the delay, cancelling any previously scheduled
// run
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel stops any pending run
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
