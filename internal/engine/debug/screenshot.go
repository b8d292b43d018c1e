// Package debug provides screenshot capture for the viewers.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture writes PNG screenshots into a directory. Names are
// "<prefix>_<timestamp>_<n>.png" so captures within the same second do
// not overwrite each other.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	count     int
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// OutputDir returns the directory screenshots are written to.
func (sc *ScreenshotCapture) OutputDir() string {
	return sc.outputDir
}

// FlipPixels copies bottom-up RGBA rows, as returned by glReadPixels,
// into a top-down image.
func FlipPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// CaptureFromPixels saves bottom-up RGBA pixel data.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves an image under the next generated name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	return sc.CaptureAs(img, sc.GenerateFilename())
}

// CaptureAs saves an image under an explicit file name inside the output
// directory.
func (sc *ScreenshotCapture) CaptureAs(img image.Image, name string) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
		name = filepath.Join(sc.outputDir, filepath.Base(name))
	}

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}

// GenerateFilename returns the next screenshot file name (without the
// directory) and advances the counter.
func (sc *ScreenshotCapture) GenerateFilename() string {
	sc.count++
	timestamp := sc.now().Format("2006-01-02_15-04-05")
	return fmt.Sprintf("%s_%s_%03d.png", sc.prefix, timestamp, sc.count)
}
