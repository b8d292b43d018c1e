package kiosk

import "github.com/Faultbox/raging-sea/internal/engine/input"

// orbiter is the part of the orbit camera a mouse drag steers.
type orbiter interface {
	HandleDrag(dx, dy float32, viewportHeight int)
	HandlePan(dx, dy float32, viewportHeight int)
}

// dragTracker follows button transitions in event order, so a press,
// moves and release inside a single poll still steer the camera.
type dragTracker struct {
	left, right bool
}

func (d *dragTracker) handle(e input.Event, cam orbiter, height int) {
	switch e.Type {
	case input.EventMouseDown, input.EventMouseUp:
		down := e.Type == input.EventMouseDown
		switch e.Button {
		case input.ButtonLeft:
			d.left = down
		case input.ButtonRight:
			d.right = down
		}

	case input.EventMouseMove:
		if d.left {
			cam.HandleDrag(e.DX, e.DY, height)
		}
		if d.right {
			cam.HandlePan(e.DX, e.DY, height)
		}
	}
}
