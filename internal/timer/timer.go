// Package timer provides the session stopwatch.
package timer

import (
	"sync"
	"time"
)

// DefaultInterval is how often a running timer reports its elapsed time.
const DefaultInterval = time.Second

// TickFunc receives the elapsed time on every tick. It runs on the timer's
// own goroutine, so implementations should hand the value off to their event
// loop rather than touch shared state directly.
type TickFunc func(elapsed time.Duration)

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock used to measure elapsed time.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// Timer is a pausable stopwatch that reports its elapsed time at a fixed
// interval while running.
type Timer struct {
	mu        sync.Mutex
	interval  time.Duration
	now       func() time.Time
	startedAt time.Time
	// accumulated holds the time from earlier runs, before the last Pause.
	accumulated time.Duration
	stop        chan struct{}
}

// New creates a stopped timer. A non-positive interval selects DefaultInterval.
func New(interval time.Duration, opts ...Option) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Timer{
		interval: interval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins measuring time and calls onTick every interval. onTick may be
// nil. Calling Start on a running timer does nothing.
func (t *Timer) Start(onTick TickFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return
	}

	t.startedAt = t.now()
	t.stop = make(chan struct{})
	go t.run(t.stop, onTick)
}

// Pause stops the timer, keeping the elapsed time so far. Calling Pause on a
// stopped timer does nothing.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop == nil {
		return
	}

	t.accumulated += t.now().Sub(t.startedAt)
	t.halt()
}

// Reset stops the timer and sets the elapsed time back to zero.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		t.halt()
	}
	t.accumulated = 0
}

// Elapsed returns the total running time across all starts since the last Reset.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.elapsedLocked()
}

// Running reports whether the timer is currently measuring time.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stop != nil
}

func (t *Timer) elapsedLocked() time.Duration {
	if t.stop == nil {
		return t.accumulated
	}
	return t.accumulated + t.now().Sub(t.startedAt)
}

// halt closes the tick goroutine. Callers must hold mu.
func (t *Timer) halt() {
	close(t.stop)
	t.stop = nil
	t.startedAt = time.Time{}
}

func (t *Timer) run(stop <-chan struct{}, onTick TickFunc) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			if onTick != nil {
				onTick(t.Elapsed())
			}
		}
	}
}
