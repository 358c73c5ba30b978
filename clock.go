package forceplate

import (
	"math"
)

// Clock is the animation time of a clip. It is a value; Advance returns a new
// clock rather than changing this one.
type Clock struct {

	// Length of the clip, in seconds.
	Duration float64

	// Multiplier applied to elapsed wall time. Zero pauses.
	TimeScale float64

	// If true, time wraps around to the start of the clip. Otherwise it stops
	// at the end.
	Loop bool

	// Current animation time, in seconds.
	Time float64
}

// NewClock returns a clock at the start of a clip, playing at normal speed.
func NewClock(duration float64, loop bool) Clock {
	return Clock{
		Duration:  duration,
		TimeScale: 1,
		Loop:      loop,
	}
}

// Advance returns the clock after dt seconds of wall time.
func (c Clock) Advance(dt float64) Clock {
	c.Time += dt * c.TimeScale

	if c.Duration <= 0 {
		c.Time = 0
		return c
	}

	if c.Loop {
		c.Time = math.Mod(c.Time, c.Duration)
		if c.Time < 0 {
			c.Time += c.Duration
		}
	} else {
		c.Time = math.Max(0, math.Min(c.Time, c.Duration))
	}

	return c
}

// Seek returns the clock at the given progress through the clip, clamped to
// [0, 1].
func (c Clock) Seek(progress float64) Clock {
	c.Time = math.Max(0, math.Min(progress, 1)) * c.Duration
	return c
}

// Progress returns the animation time divided by the clip duration. A clip
// with no duration has no progress.
func (c Clock) Progress() float64 {
	if c.Duration <= 0 {
		return 0
	}

	return c.Time / c.Duration
}

// Done returns true if a non-looping clock has reached the end of the clip.
func (c Clock) Done() bool {
	return !c.Loop && c.Time >= c.Duration
}
