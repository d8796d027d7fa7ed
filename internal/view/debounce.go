package view

import (
	"sync"
	"time"
)

// DefaultDebounce is the search-as-you-type quiesce period
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers: each Trigger resets the timer and
// only the final pending invocation fires after the quiesce period.
type Debouncer struct {
	d  time.Duration
	fn func()

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(d time.Duration, fn func()) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{d: d, fn: fn}
}

// Trigger schedules fn after the quiesce period, cancelling any
// previously pending invocation
func (b *Debouncer) Trigger() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, b.fn)
}

// Stop cancels any pending invocation
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
