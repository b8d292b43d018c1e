package viewer

import (
	"testing"
	"time"
)

func TestClockElapsed(t *testing.T) {
	now := time.Unix(100, 0)
	c := newClock(func() time.Time { return now })

	if got := c.Elapsed(); got != 0 {
		t.Errorf("Elapsed() at start = %v, want 0", got)
	}
	now = now.Add(1500 * time.Millisecond)
	if got := c.Elapsed(); got != 1.5 {
		t.Errorf("Elapsed() = %v, want 1.5", got)
	}
}

func TestFPSCounter(t *testing.T) {
	f := NewFPSCounter(time.Second)
	start := time.Unix(0, 0)

	f.Tick(start)
	for i := 1; i <= 60; i++ {
		f.Tick(start.Add(time.Duration(i) * time.Second / 60))
	}
	if got := f.FPS(); got < 59.9 || got > 60.1 {
		t.Errorf("FPS() = %v, want 60", got)
	}
}

func TestFPSCounterBeforeInterval(t *testing.T) {
	f := NewFPSCounter(time.Second)
	start := time.Unix(0, 0)
	f.Tick(start)
	f.Tick(start.Add(100 * time.Millisecond))
	if got := f.FPS(); got != 0 {
		t.Errorf("FPS() = %v before first interval, want 0", got)
	}
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		ratio, max   float32
		wantW, wantH int
	}{
		{"standard display", 1280, 720, 1, 2, 1280, 720},
		{"retina", 1280, 720, 2, 2, 2560, 1440},
		{"capped", 1000, 500, 3, 2, 2000, 1000},
		{"no cap", 1000, 500, 3, 0, 3000, 1500},
		{"invalid ratio", 640, 480, 0, 2, 640, 480},
		{"zero window", 0, 0, 1, 2, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := RenderSize(tt.w, tt.h, tt.ratio, tt.max)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("RenderSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
