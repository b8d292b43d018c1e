package debugui

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type dialogKind int

const (
	dialogLoad dialogKind = iota
	dialogSave
)

// dialogResult carries a file dialog outcome back to the render thread.
type dialogResult struct {
	kind dialogKind
	path string
	err  error
}

// openPresetDialog shows a native file dialog without blocking the frame
// loop. The result arrives on results; a cancelled dialog sends nothing.
func openPresetDialog(kind dialogKind, startDir string, results chan<- dialogResult) {
	go func() {
		builder := dialog.File().
			Filter("YAML presets", "yaml", "yml").
			Filter("All Files", "*").
			SetStartDir(startDir)

		var path string
		var err error
		if kind == dialogSave {
			path, err = builder.Title("Save ocean preset").Save()
			if err == nil && filepath.Ext(path) == "" {
				path += ".yaml"
			}
		} else {
			path, err = builder.Title("Load ocean preset").Load()
		}

		if errors.Is(err, dialog.ErrCancelled) {
			results <- dialogResult{kind: kind}
			return
		}
		results <- dialogResult{kind: kind, path: path, err: err}
	}()
}
