package core

import "time"

// Timer fires at a fixed delay while armed. It is polled from the main loop
// and never fires more than once per poll; a backlog longer than one delay is
// dropped rather than replayed.
type Timer struct {
	delay       time.Duration
	accumulator time.Duration
	last        time.Time
	running     bool
}

// NewTimer constructs a stopped Timer with the given delay.
func NewTimer(delay time.Duration) *Timer {
	t := &Timer{}
	t.SetDelay(delay)
	return t
}

// SetDelay changes the interval between firings. It is safe to call from the
// main loop while the timer is armed; progress toward the next firing is kept.
func (t *Timer) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = time.Second / 60
	}
	t.delay = delay
}

// Delay returns the current interval between firings.
func (t *Timer) Delay() time.Duration { return t.delay }

// Start arms the timer. The first firing happens one full delay after the
// next call to Fire.
func (t *Timer) Start() {
	t.running = true
	t.accumulator = 0
	t.last = time.Time{}
}

// Stop disarms the timer.
func (t *Timer) Stop() {
	t.running = false
	t.accumulator = 0
	t.last = time.Time{}
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool { return t.running }

// Fire reports whether the timer is due at now.
func (t *Timer) Fire(now time.Time) bool {
	if !t.running {
		return false
	}
	if t.last.IsZero() {
		t.last = now
		return false
	}
	delta := now.Sub(t.last)
	t.last = now
	if delta > 0 {
		t.accumulator += delta
	}
	if t.accumulator < t.delay {
		return false
	}
	t.accumulator -= t.delay
	if t.accumulator >= t.delay {
		t.accumulator = 0
	}
	return true
}
