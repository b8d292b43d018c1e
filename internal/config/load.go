package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/raging-sea/internal/ocean"
)

// Load loads configuration with priority: defaults < file < flags.
// A preset named by the file or the -preset flag then overlays the ocean
// parameters.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := applyPreset(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyPreset overlays the configured preset file onto the ocean parameters.
func applyPreset(cfg *Config) error {
	if cfg.Ocean.Preset == "" {
		return nil
	}
	params, err := ocean.LoadPreset(cfg.Ocean.Preset, cfg.Ocean.Params)
	if err != nil {
		return fmt.Errorf("loading preset: %w", err)
	}
	cfg.Ocean.Params = params
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		UserConfigFile(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "RagingSea")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "RagingSea")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "raging-sea")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "raging-sea")
	}
}

// UserConfigFile returns the config file inside ConfigDir.
func UserConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// PresetDir returns where presets are saved by default.
func PresetDir() string {
	return filepath.Join(ConfigDir(), "presets")
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
