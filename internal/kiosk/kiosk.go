// Package kiosk runs the ocean in a plain SDL window without the debug
// panel. Parameters are edited from the keyboard and the selected control
// is shown in the window title.
package kiosk

import (
	"fmt"
	"path/filepath"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/engine/input"
	"github.com/Faultbox/raging-sea/internal/engine/window"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
	"github.com/Faultbox/raging-sea/internal/viewer"
)

const title = "Raging Sea"

// Kiosk is the keyboard-driven front end.
type Kiosk struct {
	cfg     *config.Config
	params  ocean.Params
	running bool

	window   *window.Window
	input    *input.Input
	viewer   *viewer.Viewer
	selector *selector
	drag     dragTracker

	// Window size in points, kept current by resize events.
	width, height int

	presetPath string
	lastTitle  string

	log *zap.Logger
}

// New opens the window and prepares the viewer.
func New(cfg *config.Config) (*Kiosk, error) {
	k := &Kiosk{
		cfg:      cfg,
		params:   cfg.Ocean.Params,
		selector: newSelector(ocean.Controls()),
		log:      logger.Named("kiosk"),
	}

	k.presetPath = cfg.Ocean.Preset
	if k.presetPath == "" {
		k.presetPath = filepath.Join(config.PresetDir(), "kiosk.yaml")
	}

	var err error
	k.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Viewer AFTER window, since OpenGL context must exist
	k.viewer, err = viewer.New(cfg, &k.params)
	if err != nil {
		k.window.Close()
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}

	k.input = input.New()
	k.width, k.height = k.window.Size()
	return k, nil
}

// Run starts the main loop. It returns when the window closes or Esc is
// pressed.
func (k *Kiosk) Run() error {
	k.running = true
	k.log.Info("starting kiosk loop")

	for k.running {
		if k.input.Update() {
			k.running = false
			break
		}

		for _, e := range k.input.Events() {
			k.handleEvent(e)
		}

		k.viewer.RenderFrame(k.width, k.height, k.window.PixelRatio())
		k.viewer.Present(k.window.DrawableSize())
		k.updateTitle()

		k.window.SwapBuffers()
	}

	return nil
}

func (k *Kiosk) handleEvent(e input.Event) {
	cam := k.viewer.Camera()
	k.drag.handle(e, cam, k.height)

	switch e.Type {
	case input.EventWindowResize:
		k.width, k.height = e.Width, e.Height
		k.log.Debug("window resized", zap.Int("width", e.Width), zap.Int("height", e.Height))

	case input.EventKeyDown:
		k.handleKey(e.Key, e.Shift)

	case input.EventMouseMove:
		k.viewer.SetPointer(input.NormalizePointer(e.X, e.Y, k.width, k.height))

	case input.EventMouseWheel:
		cam.HandleZoom(e.Wheel)

	case input.EventDoubleClick:
		k.toggleFullscreen()
	}
}

func (k *Kiosk) toggleFullscreen() {
	k.window.ToggleFullscreen()
	k.log.Info("fullscreen toggled", zap.Bool("fullscreen", k.window.Fullscreen()))
}

func (k *Kiosk) handleKey(key sdl.Keycode, shift bool) {
	switch key {
	case sdl.K_ESCAPE:
		k.running = false
	case sdl.K_TAB:
		k.selector.next(shift)
	case sdl.K_RIGHT:
		k.selector.nudge(&k.params, 1, shift)
	case sdl.K_LEFT:
		k.selector.nudge(&k.params, -1, shift)
	case sdl.K_w:
		o := k.viewer.Ocean()
		o.SetWireframe(!o.Wireframe())
	case sdl.K_r:
		k.viewer.ResetParams()
		k.viewer.Camera().Reset()
	case sdl.K_p:
		if err := k.viewer.SavePreset(k.presetPath); err != nil {
			k.log.Error("preset save failed", zap.Error(err))
		}
	case sdl.K_f:
		k.toggleFullscreen()
	case sdl.K_F12:
		if _, err := k.viewer.Screenshot(); err != nil {
			k.log.Error("screenshot failed", zap.Error(err))
		}
	}
}

// updateTitle shows the selected control; SDL is only called on change.
func (k *Kiosk) updateTitle() {
	t := fmt.Sprintf("%s | %s | %.0f FPS", title, k.selector.label(&k.params), k.viewer.FPS())
	if t == k.lastTitle {
		return
	}
	k.lastTitle = t
	k.window.SetTitle(t)
}

// Close releases the viewer and the window.
func (k *Kiosk) Close() {
	k.log.Info("closing kiosk")

	if k.viewer != nil {
		k.viewer.Close()
	}
	if k.window != nil {
		k.window.Close()
	}
}
