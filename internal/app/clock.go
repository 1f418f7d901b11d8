package app

import "time"

// Clock measures elapsed time since its first reading, so time spent
// loading before the first frame is not counted. The time source is
// injectable so frames can be replayed in tests.
type Clock struct {
	now     func() time.Time
	start   time.Time
	started bool
}

// NewClock returns a clock reading now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Elapsed returns the seconds since the first call, which returns 0.
func (c *Clock) Elapsed() float64 {
	t := c.now()
	if !c.started {
		c.start, c.started = t, true
	}
	return t.Sub(c.start).Seconds()
}

// fpsCounter counts frames over one second windows.
type fpsCounter struct {
	frames int
	since  float64
	fps    float32
}

// tick records a frame drawn at elapsed time t and reports whether the
// rate was refreshed.
func (f *fpsCounter) tick(t float64) bool {
	f.frames++
	window := t - f.since
	if window < 1 {
		return false
	}
	f.fps = float32(float64(f.frames) / window)
	f.frames = 0
	f.since = t
	return true
}
