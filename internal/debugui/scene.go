package debugui

import (
	"github.com/Faultbox/raging-sea/internal/engine/input"
	"github.com/Faultbox/raging-sea/pkg/math"
)

// sceneInput is one frame of pointer state over the scene image, in
// window points relative to the image's top-left corner.
type sceneInput struct {
	Hovered       bool
	X, Y          float32
	Width, Height float32

	LeftDown     bool
	LeftClicked  bool
	RightDown    bool
	RightClicked bool
	Wheel        float32
}

// orbiter is the part of the orbit camera the scene drives.
type orbiter interface {
	HandleDrag(dx, dy float32, viewportHeight int)
	HandlePan(dx, dy float32, viewportHeight int)
	HandleZoom(delta float32)
}

// sceneController turns pointer state into camera motion. A drag that
// starts over the scene keeps steering the camera until the button is
// released, even if the pointer crosses the panel.
type sceneController struct {
	camera orbiter

	rotating     bool
	panning      bool
	lastX, lastY float32
}

func newSceneController(camera orbiter) *sceneController {
	return &sceneController{camera: camera}
}

// handle applies one frame of input. It returns the normalized pointer;
// ok is false when the pointer is not over the scene.
func (c *sceneController) handle(in sceneInput) (pointer math.Vec2, ok bool) {
	if in.Hovered && in.LeftClicked {
		c.rotating = true
	}
	if in.Hovered && in.RightClicked {
		c.panning = true
	}
	if !in.LeftDown {
		c.rotating = false
	}
	if !in.RightDown {
		c.panning = false
	}

	dx, dy := in.X-c.lastX, in.Y-c.lastY
	height := int(in.Height)
	if c.rotating && !in.LeftClicked {
		c.camera.HandleDrag(dx, dy, height)
	}
	if c.panning && !in.RightClicked {
		c.camera.HandlePan(dx, dy, height)
	}
	if in.Hovered && in.Wheel != 0 {
		c.camera.HandleZoom(in.Wheel)
	}
	c.lastX, c.lastY = in.X, in.Y

	if !in.Hovered {
		return math.Vec2{}, false
	}
	return input.NormalizePointer(in.X, in.Y, int(in.Width), int(in.Height)), true
}
