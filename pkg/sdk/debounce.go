package sdk

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of inputs into a single callback carrying
// the last value. Each Input restarts the timer, so the callback fires
// once, interval after the burst ends.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func(value string)
	timer    *time.Timer
	pending  string
	waiting  bool
}

// NewDebouncer creates a Debouncer that calls fn with the final value
// of each input burst.
func NewDebouncer(interval time.Duration, fn func(value string)) *Debouncer {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return &Debouncer{
		interval: interval,
		fn:       fn,
	}
}

// Input records a new value and restarts the quiet-period timer. Only
// the value present when the timer fires is delivered.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = value
	d.waiting = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.waiting {
		d.mu.Unlock()
		return
	}
	value := d.pending
	d.waiting = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(value)
}

// Flush delivers the pending value immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.fire()
}

// Stop cancels any pending callback without delivering it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.waiting = false
}
