// Package app wires configuration, the ImGui backend, the viewer and the
// debug panel into the GUI front end.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/debugui"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
	"github.com/Faultbox/raging-sea/internal/viewer"
)

// App is the GUI front end.
type App struct {
	params  ocean.Params
	backend *debugui.Backend
	viewer  *viewer.Viewer
	panel   *debugui.Panel
}

// New creates the window, the viewer and the panel.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("evaluator", cfg.Ocean.Evaluator),
	)

	a := &App{params: cfg.Ocean.Params}

	var err error
	a.backend, err = debugui.NewBackend("Raging Sea", cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.Fullscreen)
	if err != nil {
		return nil, fmt.Errorf("failed to create UI backend: %w", err)
	}

	// Viewer AFTER backend, since the backend creates the GL context
	a.viewer, err = viewer.New(cfg, &a.params)
	if err != nil {
		return nil, fmt.Errorf("failed to create viewer: %w", err)
	}

	a.panel = debugui.NewPanel(a.viewer, a.backend, cfg, config.PresetDir())
	return a, nil
}

// Run blocks until the window is closed.
func (a *App) Run() {
	logger.Info("starting render loop")
	a.backend.Run(a.panel.Frame)
}

// Close releases GL resources.
func (a *App) Close() {
	logger.Info("closing app")
	if a.viewer != nil {
		a.viewer.Close()
	}
}
