package debugui

import (
	"path/filepath"

	"github.com/Faultbox/raging-sea/internal/config"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

const windowTitle = "Raging Sea"

// settingsToSave returns cfg with the panel's live state applied. The
// preset reference is dropped because its values are already in params.
func settingsToSave(cfg config.Config, params ocean.Params, wireframe, showPanel bool) config.Config {
	cfg.Ocean.Params = params
	cfg.Ocean.Wireframe = wireframe
	cfg.Ocean.Preset = ""
	cfg.Debug.ShowPanel = showPanel
	return cfg
}

// titleFor names the window after the last preset loaded or saved.
func titleFor(preset string) string {
	if preset == "" {
		return windowTitle
	}
	return windowTitle + " - " + filepath.Base(preset)
}
