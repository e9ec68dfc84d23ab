package view

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window applied to search input.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer fires a function once after a quiet period. Scheduling a new
// function supersedes any pending one, so a burst of calls results in a
// single trailing execution.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer with the given quiescence window.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Debounce schedules fn to run after the window elapses with no further
// calls. A pending function is cancelled, never run twice.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending function without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels any pending function and runs fn immediately.
func (d *Debouncer) Flush(fn func()) {
	d.Cancel()
	fn()
}
