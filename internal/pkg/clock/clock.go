package clock

import "time"

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FrozenClock returns a fixed time until advanced. Test helper.
type FrozenClock struct {
	current time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{current: t}
}

func (c *FrozenClock) Now() time.Time {
	return c.current
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
