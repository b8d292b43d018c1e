package input

import "time"

// Double-click defaults, close to common desktop settings.
const (
	DefaultDoubleClickInterval = 400 * time.Millisecond
	DefaultDoubleClickDistance = 6
)

// DoubleClick detects two clicks close together in time and space.
type DoubleClick struct {
	Interval    time.Duration
	MaxDistance float32

	last  time.Time
	lastX float32
	lastY float32
	armed bool
}

// NewDoubleClick creates a detector.
func NewDoubleClick(interval time.Duration, maxDistance float32) *DoubleClick {
	return &DoubleClick{Interval: interval, MaxDistance: maxDistance}
}

// Click registers a click and reports whether it completes a double
// click. A triple click counts as one double click followed by a new
// first click.
func (d *DoubleClick) Click(at time.Time, x, y float32) bool {
	if d.armed && at.Sub(d.last) <= d.Interval {
		dx, dy := x-d.lastX, y-d.lastY
		if dx*dx+dy*dy <= d.MaxDistance*d.MaxDistance {
			d.armed = false
			return true
		}
	}
	d.armed = true
	d.last = at
	d.lastX, d.lastY = x, y
	return false
}
