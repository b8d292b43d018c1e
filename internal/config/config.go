// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Evaluator names for OceanConfig.Evaluator.
const (
	EvaluatorGPU = "gpu"
	EvaluatorCPU = "cpu"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Ocean    OceanConfig    `yaml:"ocean"`
	Camera   CameraConfig   `yaml:"camera"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
}

// OceanConfig holds the wave parameters and how the surface is built.
type OceanConfig struct {
	ocean.Params `yaml:",inline"`

	Evaluator string  `yaml:"evaluator"` // "gpu" or "cpu"
	Size      float32 `yaml:"size"`
	Segments  int     `yaml:"segments"`
	Wireframe bool    `yaml:"wireframe"`
	Preset    string  `yaml:"preset"` // optional parameter file applied after this config
}

// CameraConfig holds the perspective camera and orbit control settings.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"` // degrees
	Near          float32 `yaml:"near"`
	Far           float32 `yaml:"far"`
	Distance      float32 `yaml:"distance"`
	Damping       bool    `yaml:"damping"`
	DampingFactor float32 `yaml:"damping_factor"`
}

// DebugConfig holds debug panel and capture settings.
type DebugConfig struct {
	ShowPanel     bool   `yaml:"show_panel"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
		},
		Ocean: OceanConfig{
			Params:    ocean.DefaultParams(),
			Evaluator: EvaluatorGPU,
			Size:      ocean.DefaultSize,
			Segments:  ocean.DefaultSegments,
		},
		Camera: CameraConfig{
			FOV:           75,
			Near:          0.1,
			Far:           100,
			Distance:      3,
			Damping:       true,
			DampingFactor: 0.05,
		},
		Debug: DebugConfig{
			ShowPanel:     true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate checks settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if !positiveFinite(c.Graphics.MaxPixelRatio) {
		errs = append(errs, fmt.Errorf("graphics: max_pixel_ratio must be positive and finite, got %v", c.Graphics.MaxPixelRatio))
	}
	if c.Ocean.Evaluator != EvaluatorGPU && c.Ocean.Evaluator != EvaluatorCPU {
		errs = append(errs, fmt.Errorf("ocean: unknown evaluator %q", c.Ocean.Evaluator))
	}
	if c.Ocean.Segments < 1 {
		errs = append(errs, fmt.Errorf("ocean: segments must be >= 1, got %d", c.Ocean.Segments))
	}
	if !positiveFinite(c.Ocean.Size) {
		errs = append(errs, fmt.Errorf("ocean: size must be positive and finite, got %v", c.Ocean.Size))
	}
	if err := c.Ocean.Params.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ocean: %w", err))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Damping && (c.Camera.DampingFactor <= 0 || c.Camera.DampingFactor > 1) {
		errs = append(errs, fmt.Errorf("camera: damping_factor must be in (0, 1], got %v", c.Camera.DampingFactor))
	}

	return errors.Join(errs...)
}

// positiveFinite is false for NaN and ±Inf as well as v <= 0.
func positiveFinite(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// FileConfig converts the logging section for logger.Init.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	return logger.FileConfig{
		Path:       l.LogFile,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}
