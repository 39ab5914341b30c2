// Package search holds the keystroke debouncing used by the search
// surface. The scan itself lives in the post repository.
package search

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into one execution after a quiet
// period. Each execution receives a context that is cancelled as soon as
// a newer trigger supersedes it, so stale in-flight searches are
// discarded instead of racing their results back out of order. Stop must
// be called on teardown.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	cancel  context.CancelFunc
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any pending or
// in-flight execution. fn runs on its own goroutine; it should return
// promptly once its context is cancelled.
func (d *Debouncer) Trigger(fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	// Supersede whatever is pending or running.
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.stopped || gen != d.gen {
			d.mu.Unlock()
			return
		}
		ctx, cancel := context.WithCancel(context.Background())
		d.cancel = cancel
		d.mu.Unlock()

		fn(ctx)
	})
}

// Current reports the active generation; an execution can compare its own
// generation against it before publishing results.
func (d *Debouncer) Current() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Stop cancels any pending or in-flight execution. The debouncer cannot
// be reused afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
