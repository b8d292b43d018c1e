// Package input translates SDL2 events into viewer events and tracks
// the pointer position.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/raging-sea/pkg/math"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventDoubleClick
)

// Mouse buttons, matching SDL numbering.
const (
	ButtonLeft   = sdl.BUTTON_LEFT
	ButtonMiddle = sdl.BUTTON_MIDDLE
	ButtonRight  = sdl.BUTTON_RIGHT
)

// Event is a processed input event. Coordinates are window points.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Shift  bool
	Width  int
	Height int
	X, Y   float32
	DX, DY float32
	Button uint8
	Wheel  float32
}

// Input polls SDL and keeps the pointer position between frames.
type Input struct {
	events      []Event
	x, y        float32
	doubleClick *DoubleClick
	now         func() time.Time
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events:      make([]Event, 0, 16),
		doubleClick: NewDoubleClick(DefaultDoubleClickInterval, DefaultDoubleClickDistance),
		now:         time.Now,
	}
}

// Update polls SDL events. Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED {
				i.events = append(i.events, Event{
					Type:  EventKeyDown,
					Key:   e.Keysym.Sym,
					Shift: sdl.GetModState()&sdl.KMOD_SHIFT != 0,
				})
			}

		case *sdl.MouseMotionEvent:
			i.Move(float32(e.X), float32(e.Y))

		case *sdl.MouseButtonEvent:
			i.Press(e.Button, float32(e.X), float32(e.Y), e.State == sdl.PRESSED)

		case *sdl.MouseWheelEvent:
			wheel := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wheel = -wheel
			}
			i.events = append(i.events, Event{Type: EventMouseWheel, X: i.x, Y: i.y, Wheel: wheel})
		}
	}

	return quit
}

// Move records a pointer move and emits EventMouseMove with the delta
// since the previous position.
func (i *Input) Move(x, y float32) {
	i.events = append(i.events, Event{
		Type: EventMouseMove,
		X:    x,
		Y:    y,
		DX:   x - i.x,
		DY:   y - i.y,
	})
	i.x, i.y = x, y
}

// Press records a button transition. A second left press inside the
// double-click window also emits EventDoubleClick.
func (i *Input) Press(button uint8, x, y float32, pressed bool) {
	i.x, i.y = x, y

	typ := EventMouseUp
	if pressed {
		typ = EventMouseDown
	}
	i.events = append(i.events, Event{Type: typ, X: x, Y: y, Button: button})

	if pressed && button == ButtonLeft && i.doubleClick.Click(i.now(), x, y) {
		i.events = append(i.events, Event{Type: EventDoubleClick, X: x, Y: y, Button: button})
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// NormalizePointer maps a position inside a width×height area to
// [-1, 1] on both axes with y pointing up. A degenerate area maps to
// the origin.
func NormalizePointer(x, y float32, width, height int) math.Vec2 {
	if width <= 0 || height <= 0 {
		return math.Vec2{}
	}
	return math.Vec2{
		X: x/float32(width)*2 - 1,
		Y: -(y/float32(height)*2 - 1),
	}
}
