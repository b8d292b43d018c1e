package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/raging-sea/pkg/math"
)

func testConfig(damping bool) Config {
	return Config{
		FOV:           75,
		Near:          0.1,
		Far:           100,
		Distance:      3,
		Damping:       damping,
		DampingFactor: 0.05,
	}
}

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestDefaultPosition(t *testing.T) {
	c := NewOrbitCamera(testConfig(true))
	p := c.Position()
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, 3) {
		t.Errorf("Position() = %v, want (0, 0, 3)", p)
	}
}

func TestDragWithoutDamping(t *testing.T) {
	c := NewOrbitCamera(testConfig(false))

	// Dragging a quarter of the viewport height turns a quarter circle.
	c.HandleDrag(-100, 0, 400)
	c.Update()

	if !near(c.Yaw, gomath.Pi/2) {
		t.Errorf("Yaw = %v, want pi/2", c.Yaw)
	}
	p := c.Position()
	if !near(p.X, 3) || !near(p.Z, 0) {
		t.Errorf("Position() = %v, want (3, 0, 0)", p)
	}
	if c.Moving() {
		t.Error("undamped camera should settle in one update")
	}
}

func TestDampingConverges(t *testing.T) {
	c := NewOrbitCamera(testConfig(true))
	c.HandleDrag(-100, 0, 400)

	c.Update()
	if c.Yaw <= 0 || c.Yaw >= gomath.Pi/2 {
		t.Fatalf("after one damped update Yaw = %v, want partial turn", c.Yaw)
	}
	if !c.Moving() {
		t.Fatal("expected camera to still be moving")
	}

	for i := 0; i < 1000; i++ {
		c.Update()
	}
	if !near(c.Yaw, gomath.Pi/2) {
		t.Errorf("Yaw = %v after settling, want pi/2", c.Yaw)
	}
	if c.Moving() {
		t.Error("expected camera to settle")
	}
}

func TestPitchClamped(t *testing.T) {
	c := NewOrbitCamera(testConfig(false))
	c.HandleDrag(0, 10000, 100)
	c.Update()

	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want clamp at %v", c.Pitch, c.MaxPitch)
	}
	// Camera stays in front of the up vector, so the view matrix is finite.
	m := c.ViewMatrix()
	for i, v := range m {
		if gomath.IsNaN(float64(v)) {
			t.Fatalf("view matrix element %d is NaN", i)
		}
	}
}

func TestZoomClamped(t *testing.T) {
	c := NewOrbitCamera(testConfig(true))

	c.HandleZoom(1)
	if !near(c.Distance, 3*0.95) {
		t.Errorf("Distance = %v, want %v", c.Distance, 3*0.95)
	}

	c.HandleZoom(1000)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want min %v", c.Distance, c.MinDistance)
	}

	c.HandleZoom(-10000)
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want max %v", c.Distance, c.MaxDistance)
	}
}

func TestPanMovesTarget(t *testing.T) {
	c := NewOrbitCamera(testConfig(false))
	c.HandlePan(-50, 0, 400)
	c.Update()

	// Looking down -Z, dragging left moves the target towards +X.
	if c.Target.X <= 0 || !near(c.Target.Y, 0) || !near(c.Target.Z, 0) {
		t.Errorf("Target = %v, want positive X only", c.Target)
	}
}

func TestSetViewport(t *testing.T) {
	c := NewOrbitCamera(testConfig(true))
	c.SetViewport(1920, 1080)
	if !near(c.Aspect, 1920.0/1080.0) {
		t.Errorf("Aspect = %v", c.Aspect)
	}

	c.SetViewport(0, 0)
	if !near(c.Aspect, 1920.0/1080.0) {
		t.Errorf("zero-size viewport should be ignored, Aspect = %v", c.Aspect)
	}
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera(testConfig(true))
	c.SetViewport(800, 400)
	c.HandleDrag(40, 40, 400)
	c.HandlePan(10, 10, 400)
	c.Update()
	c.HandleZoom(3)

	c.Reset()

	if c.Yaw != 0 || c.Pitch != 0 || c.Distance != 3 || c.Target != (math.Vec3{}) {
		t.Errorf("Reset left pose %+v", c)
	}
	if c.Moving() {
		t.Error("Reset should drop queued motion")
	}
	if c.Aspect != 2 {
		t.Errorf("Reset should keep aspect, got %v", c.Aspect)
	}
	if !c.Damping || c.DampingFactor != 0.05 || c.MinDistance != 0.2 {
		t.Errorf("Reset should keep settings, got damping=%v factor=%v min=%v", c.Damping, c.DampingFactor, c.MinDistance)
	}

	// The starting pose survives repeated resets.
	c.HandleZoom(5)
	c.HandleDrag(100, 0, 400)
	c.Update()
	c.Reset()
	if c.Yaw != 0 || c.Distance != 3 {
		t.Errorf("second Reset left yaw=%v distance=%v", c.Yaw, c.Distance)
	}
}

func TestViewProjectionCentresTarget(t *testing.T) {
	c := NewOrbitCamera(testConfig(false))
	c.SetViewport(1280, 720)

	p := c.ViewProjection().TransformVec3(c.Target)
	if !near(p.X, 0) || !near(p.Y, 0) {
		t.Errorf("target projects to %v, want screen centre", p)
	}
}
