// Package camera provides the perspective orbit camera used to inspect
// the ocean surface.
package camera

import (
	gomath "math"

	"github.com/Faultbox/raging-sea/pkg/math"
)

// OrbitCamera orbits a target point. Drag, pan and zoom input is queued
// and applied by Update, optionally spread over several frames (damping).
type OrbitCamera struct {
	// Target point to orbit around
	Target math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from target
	Pitch    float32 // Elevation above the XZ plane (radians)
	Yaw      float32 // Rotation around Y, 0 looks down -Z (radians)

	// Projection
	FOV    float32 // Vertical field of view (degrees)
	Near   float32
	Far    float32
	Aspect float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	// Damping spreads queued motion over frames; DampingFactor is the
	// fraction applied per Update.
	Damping       bool
	DampingFactor float32

	pendingYaw   float32
	pendingPitch float32
	pendingPan   math.Vec3

	home pose
}

// pose is the part of the camera Reset restores.
type pose struct {
	Target   math.Vec3
	Distance float32
	Pitch    float32
	Yaw      float32
}

// Config holds the values NewOrbitCamera starts from.
type Config struct {
	FOV           float32
	Near          float32
	Far           float32
	Distance      float32
	Damping       bool
	DampingFactor float32
}

// NewOrbitCamera creates a camera at (0, 0, Distance) looking at the origin.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	const pitchLimit = gomath.Pi/2 - 0.001

	c := &OrbitCamera{
		Distance:      cfg.Distance,
		FOV:           cfg.FOV,
		Near:          cfg.Near,
		Far:           cfg.Far,
		Aspect:        1,
		MinDistance:   cfg.Near * 2,
		MaxDistance:   cfg.Far / 2,
		MinPitch:      -pitchLimit,
		MaxPitch:      pitchLimit,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		Damping:       cfg.Damping,
		DampingFactor: cfg.DampingFactor,
	}
	c.home = pose{Target: c.Target, Distance: c.Distance, Pitch: c.Pitch, Yaw: c.Yaw}
	return c
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	offset := math.Vec3{
		X: c.Distance * float32(cp*gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * float32(cp*gomath.Cos(float64(c.Yaw))),
	}
	return c.Target.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// SetViewport updates the aspect ratio after a resize.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// HandleDrag queues a rotation from a pointer drag of (dx, dy) pixels in
// a viewport of the given height. A drag across the full height turns
// the camera once around.
func (c *OrbitCamera) HandleDrag(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	scale := 2 * gomath.Pi / float32(viewportHeight) * c.RotateSpeed
	c.pendingYaw -= dx * scale
	c.pendingPitch += dy * scale
}

// HandlePan queues a translation of the target so the point under the
// pointer follows a drag of (dx, dy) pixels.
func (c *OrbitCamera) HandlePan(dx, dy float32, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	// World units per pixel at the target distance.
	unit := 2 * c.Distance * float32(gomath.Tan(float64(math.Radians(c.FOV))/2)) / float32(viewportHeight) * c.PanSpeed

	forward := c.Target.Sub(c.Position()).Normalize()
	right := forward.Cross(math.Vec3{X: 0, Y: 1, Z: 0}).Normalize()
	up := right.Cross(forward)

	move := right.Scale(-dx * unit).Add(up.Scale(dy * unit))
	c.pendingPan = c.pendingPan.Add(move)
}

// HandleZoom moves the camera towards the target for positive wheel
// deltas. Zoom is applied immediately.
func (c *OrbitCamera) HandleZoom(delta float32) {
	scale := float32(gomath.Pow(0.95, float64(delta*c.ZoomSpeed)))
	c.Distance = math.Clamp(c.Distance*scale, c.MinDistance, c.MaxDistance)
}

// Update applies queued motion. Call once per frame.
func (c *OrbitCamera) Update() {
	f := float32(1)
	if c.Damping {
		f = c.DampingFactor
	}

	c.Yaw += c.pendingYaw * f
	c.Pitch = math.Clamp(c.Pitch+c.pendingPitch*f, c.MinPitch, c.MaxPitch)
	c.Target = c.Target.Add(c.pendingPan.Scale(f))

	if c.Damping {
		c.pendingYaw *= 1 - f
		c.pendingPitch *= 1 - f
		c.pendingPan = c.pendingPan.Scale(1 - f)
	} else {
		c.pendingYaw = 0
		c.pendingPitch = 0
		c.pendingPan = math.Vec3{}
	}
}

// Moving reports whether queued motion is still being applied.
func (c *OrbitCamera) Moving() bool {
	const eps = 1e-5
	return abs(c.pendingYaw) > eps || abs(c.pendingPitch) > eps || c.pendingPan.Length() > eps
}

// Reset restores the starting pose and drops queued motion. Projection,
// limits and the aspect ratio are kept.
func (c *OrbitCamera) Reset() {
	c.Target = c.home.Target
	c.Distance = c.home.Distance
	c.Pitch = c.home.Pitch
	c.Yaw = c.home.Yaw

	c.pendingYaw = 0
	c.pendingPitch = 0
	c.pendingPan = math.Vec3{}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
