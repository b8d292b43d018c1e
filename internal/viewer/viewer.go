// Package viewer drives the ocean from frame to frame: it owns the clock,
// the camera, the ocean renderer and the offscreen scene target shared by
// the GUI and kiosk front ends.
package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/engine/camera"
	"github.com/Faultbox/raging-sea/internal/engine/debug"
	"github.com/Faultbox/raging-sea/internal/engine/framebuffer"
	"github.com/Faultbox/raging-sea/internal/engine/renderer"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
	"github.com/Faultbox/raging-sea/pkg/math"
)

// Viewer renders one ocean surface. It must be created and used on the
// thread that owns the GL context.
type Viewer struct {
	cfg      *config.Config
	params   *ocean.Params
	defaults ocean.Params

	camera   *camera.OrbitCamera
	renderer *renderer.Renderer
	ocean    *renderer.OceanRenderer
	scene    *framebuffer.Framebuffer
	shots    *debug.ScreenshotCapture

	clock   *Clock
	fps     *FPSCounter
	time    float32
	pointer math.Vec2

	log *zap.Logger
}

// New creates a viewer for params. The GL context must be current.
func New(cfg *config.Config, params *ocean.Params) (*Viewer, error) {
	log := logger.Named("viewer")

	grid, err := ocean.NewGrid(cfg.Ocean.Size, cfg.Ocean.Segments)
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}

	r, err := renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		ClearColor: [4]float32{0, 0, 0, 1},
	})
	if err != nil {
		return nil, err
	}

	oceanRenderer, err := renderer.NewOceanRenderer(grid, cfg.Ocean.Evaluator == config.EvaluatorCPU)
	if err != nil {
		return nil, err
	}
	oceanRenderer.SetWireframe(cfg.Ocean.Wireframe)

	scene, err := framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		oceanRenderer.Destroy()
		return nil, err
	}

	cam := camera.NewOrbitCamera(camera.Config{
		FOV:           cfg.Camera.FOV,
		Near:          cfg.Camera.Near,
		Far:           cfg.Camera.Far,
		Distance:      cfg.Camera.Distance,
		Damping:       cfg.Camera.Damping,
		DampingFactor: cfg.Camera.DampingFactor,
	})

	v := &Viewer{
		cfg:      cfg,
		params:   params,
		defaults: *params,
		camera:   cam,
		renderer: r,
		ocean:    oceanRenderer,
		scene:    scene,
		shots:    debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "ragingsea"),
		clock:    NewClock(),
		fps:      NewFPSCounter(500 * time.Millisecond),
		log:      log,
	}

	log.Info("viewer ready",
		zap.String("evaluator", cfg.Ocean.Evaluator),
		zap.Int("segments", cfg.Ocean.Segments),
		zap.Float32("size", cfg.Ocean.Size),
	)
	return v, nil
}

// Params returns the live parameter set.
func (v *Viewer) Params() *ocean.Params {
	return v.params
}

// Camera returns the orbit camera.
func (v *Viewer) Camera() *camera.OrbitCamera {
	return v.camera
}

// Ocean returns the ocean renderer.
func (v *Viewer) Ocean() *renderer.OceanRenderer {
	return v.ocean
}

// Scene returns the offscreen target the last frame was drawn into.
func (v *Viewer) Scene() *framebuffer.Framebuffer {
	return v.scene
}

// Time returns the elapsed seconds used for the last frame.
func (v *Viewer) Time() float32 {
	return v.time
}

// FPS returns the averaged frame rate.
func (v *Viewer) FPS() float64 {
	return v.fps.FPS()
}

// Pointer returns the pointer position normalized to [-1, 1], y up.
func (v *Viewer) Pointer() math.Vec2 {
	return v.pointer
}

// SetPointer records the normalized pointer position.
func (v *Viewer) SetPointer(p math.Vec2) {
	v.pointer = p
}

// ElevationRange returns the extremes of the last CPU evaluation. ok is
// false in GPU mode, where elevations never leave the GPU.
func (v *Viewer) ElevationRange() (lo, hi float32, ok bool) {
	s := v.ocean.Surface()
	if s == nil {
		return 0, 0, false
	}
	lo, hi = s.ElevationRange()
	return lo, hi, true
}

// RenderFrame advances the clock and camera and draws the ocean into the
// scene target at the window size scaled by the capped pixel ratio.
// It returns the target size in pixels.
func (v *Viewer) RenderFrame(windowW, windowH int, pixelRatio float32) (int, int) {
	w, h := RenderSize(windowW, windowH, pixelRatio, v.cfg.Graphics.MaxPixelRatio)

	v.time = v.clock.Elapsed()
	v.camera.SetViewport(w, h)
	v.camera.Update()

	v.scene.Resize(int32(w), int32(h))
	restore := v.scene.BindWithViewport()
	v.renderer.Begin()
	v.ocean.Render(v.params, v.time, v.camera.ViewProjection())
	restore()

	v.fps.Tick(v.clock.Now())
	return w, h
}

// Present stretches the scene target over the default framebuffer.
func (v *Viewer) Present(drawableW, drawableH int) {
	v.renderer.Resize(drawableW, drawableH)
	v.scene.BlitToDefault(int32(drawableW), int32(drawableH))
}

// ResetParams restores the parameters the viewer started with.
func (v *Viewer) ResetParams() {
	*v.params = v.defaults
	v.log.Info("parameters reset")
}

// LoadPreset replaces the parameters with a preset file. Fields missing
// from the file keep their current values.
func (v *Viewer) LoadPreset(path string) error {
	p, err := ocean.LoadPreset(path, *v.params)
	if err != nil {
		return err
	}
	*v.params = p
	v.log.Info("preset loaded", zap.String("path", path))
	return nil
}

// SavePreset writes the current parameters to path.
func (v *Viewer) SavePreset(path string) error {
	if err := ocean.SavePreset(path, *v.params); err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}
	v.log.Info("preset saved", zap.String("path", path))
	return nil
}

// ScreenshotDir returns where Screenshot writes.
func (v *Viewer) ScreenshotDir() string {
	return v.shots.OutputDir()
}

// Screenshot saves the last rendered frame as PNG.
func (v *Viewer) Screenshot() (string, error) {
	w, h := v.scene.Size()
	path, err := v.shots.CaptureFromPixels(v.scene.ReadPixels(), int(w), int(h))
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	v.log.Info("screenshot saved", zap.String("path", path))
	return path, nil
}

// Close releases GL resources.
func (v *Viewer) Close() {
	v.ocean.Destroy()
	v.scene.Destroy()
}

// RenderSize scales a window size by the device pixel ratio, capped at
// maxRatio when it is positive.
func RenderSize(windowW, windowH int, ratio, maxRatio float32) (int, int) {
	if !(ratio > 0) {
		ratio = 1
	}
	if maxRatio > 0 && ratio > maxRatio {
		ratio = maxRatio
	}
	w := int(gomath.Round(float64(float32(windowW) * ratio)))
	h := int(gomath.Round(float64(float32(windowH) * ratio)))
	return max(w, 1), max(h, 1)
}
