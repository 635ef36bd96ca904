package game

import "time"

// Clock measures wall-clock time between frames. Gaps are not clamped, so a
// long pause produces one large step.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith reads time from now instead of the system clock.
func NewClockWith(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick returns the seconds since the previous Tick. The first call returns 0.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
