// Package clock converts reading speed into display intervals and keeps a
// pausable countdown to the next word.
package clock

import "time"

// IntervalFor returns how long one word stays on screen at wpm words per minute.
// Values below 1 are treated as 1.
func IntervalFor(wpm int) time.Duration {
	if wpm < 1 {
		wpm = 1
	}
	return time.Minute / time.Duration(wpm)
}

// Countdown tracks the time left until the next word. It never reads the wall
// clock itself; callers pass the current time to every operation.
type Countdown struct {
	interval  time.Duration
	deadline  time.Time
	remaining time.Duration
	armed     bool
}

// NewCountdown returns a disarmed countdown for the given rate.
func NewCountdown(wpm int) Countdown {
	return Countdown{interval: IntervalFor(wpm)}
}

// Interval returns the current per-word interval.
func (c *Countdown) Interval() time.Duration {
	return c.interval
}

// Armed reports whether the countdown is running.
func (c *Countdown) Armed() bool {
	return c.armed
}

// Start arms the countdown so the next tick is one full interval from now.
func (c *Countdown) Start(now time.Time) {
	c.deadline = now.Add(c.interval)
	c.remaining = 0
	c.armed = true
}

// Suspend disarms the countdown and keeps the time left until the next tick.
func (c *Countdown) Suspend(now time.Time) {
	if !c.armed {
		return
	}
	c.remaining = c.deadline.Sub(now)
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.armed = false
}

// Resume re-arms a suspended countdown with the time it had left. A countdown
// that was never suspended starts a full interval.
func (c *Countdown) Resume(now time.Time) {
	if c.armed {
		return
	}
	left := c.remaining
	if left <= 0 {
		left = c.interval
	}
	c.deadline = now.Add(left)
	c.remaining = 0
	c.armed = true
}

// Reset restarts the countdown at the current interval. An armed countdown
// stays armed; a suspended one will resume with a full interval.
func (c *Countdown) Reset(now time.Time) {
	if c.armed {
		c.deadline = now.Add(c.interval)
		return
	}
	c.remaining = c.interval
}

// Stop disarms the countdown and drops any preserved remaining time.
func (c *Countdown) Stop() {
	c.armed = false
	c.remaining = 0
	c.deadline = time.Time{}
}

// SetWPM changes the interval used from the next tick on. An in-flight
// countdown keeps its deadline.
func (c *Countdown) SetWPM(wpm int) {
	c.interval = IntervalFor(wpm)
}

// Until returns the time left before the next tick, or the preserved time
// when suspended.
func (c *Countdown) Until(now time.Time) time.Duration {
	if !c.armed {
		return c.remaining
	}
	left := c.deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Due reports whether an armed countdown has reached its deadline.
func (c *Countdown) Due(now time.Time) bool {
	return c.armed && !now.Before(c.deadline)
}
