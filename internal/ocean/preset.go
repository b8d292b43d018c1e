package ocean

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPreset reads parameters from a YAML file. Fields missing from the
// file keep the values in base.
func LoadPreset(path string, base Params) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	p := base
	if err := yaml.Unmarshal(data, &p); err != nil {
		return base, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return base, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// SavePreset writes parameters to a YAML file, creating parent directories.
func SavePreset(path string, p Params) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
