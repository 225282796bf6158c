package client

import (
	"sync"
	"time"
)

// Delay used by search boxes unless the caller picks another.
const DEFAULT_DEBOUNCE_DELAY = 300 * time.Millisecond

// Debouncer coalesces rapid triggers into one call: fn runs after the delay
// passes with no further triggers. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DEFAULT_DEBOUNCE_DELAY
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, cancelling any earlier pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
