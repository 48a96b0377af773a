package paycycle

import (
	"sync"
	"time"
)

const defaultDebounce = 500 * time.Millisecond

// Debouncer coalesces rapid calls into one. Each Do resets the timer; only
// the last function passed within the window runs. Built for search-as-you-
// type against list endpoints.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given delay. A non-positive
// delay falls back to 500ms.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = defaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn after the delay, cancelling any previously scheduled call.
// fn runs on the timer goroutine.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
