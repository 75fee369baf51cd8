// Package countdown implements the one-shot delivery countdown: a fixed
// duration ticking down once per second, a warning flag for the final
// stretch, and a timeout callback that fires at most once. Cancellation wins
// over a racing final tick, and tearing the timer down always stops the
// underlying tick goroutine.
package countdown

import (
	"fmt"
	"sync"
	"time"

	"logistics/internal/pkg/errs"
)

const (
	// DefaultDurationSeconds is the delivery confirmation window.
	DefaultDurationSeconds = 300

	// DefaultWarningSeconds is the threshold below which the remaining time
	// is considered to be running out.
	DefaultWarningSeconds = 60

	defaultInterval = time.Second
)

// Option customizes a Timer. Used by tests to shrink the tick interval.
type Option func(*Timer)

// WithInterval overrides the tick interval. The remaining value still counts
// logical seconds; only the wall-clock pace changes.
func WithInterval(interval time.Duration) Option {
	return func(t *Timer) {
		t.interval = interval
	}
}

// WithWarningThreshold overrides the running-out threshold in seconds.
func WithWarningThreshold(seconds int) Option {
	return func(t *Timer) {
		t.warning = seconds
	}
}

// Timer is a single-fire cancellable countdown. All methods are safe for
// concurrent use; the timeout callback runs on the timer's own goroutine.
type Timer struct {
	mu        sync.Mutex
	remaining int
	warning   int
	interval  time.Duration
	onTimeout func()
	stop      chan struct{}
	stopped   bool
	fired     bool
}

// Start begins a countdown of durationSeconds, invoking onTimeout exactly
// once if the countdown reaches zero before Cancel is called. onTimeout may
// be nil.
func Start(durationSeconds int, onTimeout func(), opts ...Option) (*Timer, error) {
	if durationSeconds <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("durationSeconds",
			fmt.Errorf("%d is not greater than 0", durationSeconds))
	}

	t := &Timer{
		remaining: durationSeconds,
		warning:   DefaultWarningSeconds,
		interval:  defaultInterval,
		onTimeout: onTimeout,
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	go t.run()
	return t, nil
}

// Remaining returns the remaining whole seconds of the countdown.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// RunningOut reports whether the remaining time is at or below the warning
// threshold.
func (t *Timer) RunningOut() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining <= t.warning
}

// Expired reports whether the countdown reached zero and the timeout callback
// was handed off.
func (t *Timer) Expired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Cancel stops the countdown. After Cancel returns, onTimeout is guaranteed
// not to fire unless it had already been handed off before the call. Cancel
// is idempotent and always releases the tick goroutine.
func (t *Timer) Cancel() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	close(t.stop)
	t.mu.Unlock()
}

func (t *Timer) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if t.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown and reports whether the goroutine should
// exit. The stopped check and the decrement share one critical section so a
// cancellation that lands before the final tick always wins.
func (t *Timer) tick() bool {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return true
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		t.mu.Unlock()
		return false
	}

	t.fired = true
	t.stopped = true
	onTimeout := t.onTimeout
	t.mu.Unlock()

	if onTimeout != nil {
		onTimeout()
	}
	return true
}

// FormatSeconds renders a second count as M:SS for display.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
