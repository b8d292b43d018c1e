package viewer

import "time"

// Clock reports seconds elapsed since it was started.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock at the current time.
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Elapsed returns seconds since the clock started.
func (c *Clock) Elapsed() float32 {
	return float32(c.now().Sub(c.start).Seconds())
}

// Now returns the clock's current wall time.
func (c *Clock) Now() time.Time {
	return c.now()
}

// FPSCounter averages frame rate over a fixed interval.
type FPSCounter struct {
	interval time.Duration
	frames   int
	since    time.Time
	fps      float64
}

// NewFPSCounter creates a counter that refreshes its reading every interval.
func NewFPSCounter(interval time.Duration) *FPSCounter {
	return &FPSCounter{interval: interval}
}

// Tick records a finished frame.
func (f *FPSCounter) Tick(now time.Time) {
	if f.since.IsZero() {
		f.since = now
		return
	}
	f.frames++
	if elapsed := now.Sub(f.since); elapsed >= f.interval {
		f.fps = float64(f.frames) / elapsed.Seconds()
		f.frames = 0
		f.since = now
	}
}

// FPS returns the last averaged reading.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}
