package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/raging-sea/internal/engine/debug"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

type options struct {
	Params   ocean.Params
	Start    float64
	Frames   int
	FPS      float64
	Size     int
	OutDir   string
	Segments int
	Workers  int
}

func (o options) validate() error {
	var errs []error
	if o.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames must be >= 1, got %d", o.Frames))
	}
	if !finite32(o.Start) {
		errs = append(errs, fmt.Errorf("start time must be finite, got %v", o.Start))
	}
	if !(o.FPS > 0) || math.IsInf(o.FPS, 1) {
		errs = append(errs, fmt.Errorf("fps must be positive and finite, got %v", o.FPS))
	}
	if o.Size < 1 {
		errs = append(errs, fmt.Errorf("size must be >= 1, got %d", o.Size))
	}
	if o.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", o.Workers))
	}
	if err := o.Params.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// finite32 reports whether v survives the float32 time the wave is
// evaluated at.
func finite32(v float64) bool {
	f := float64(float32(v))
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// frameTime returns the simulated time of frame i.
func (o options) frameTime(i int) float32 {
	return float32(o.Start + float64(i)/o.FPS)
}

// renderFrames writes one PNG per frame and returns their paths in frame
// order. Each worker owns its surface; the grid and parameters are shared
// read-only.
func renderFrames(ctx context.Context, o options) ([]string, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	grid, err := ocean.NewGrid(ocean.DefaultSize, o.Segments)
	if err != nil {
		return nil, err
	}

	log := logger.Named("seasnap")
	shots := debug.NewScreenshotCapture(o.OutDir, "sea")
	paths := make([]string, o.Frames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for i := 0; i < o.Frames; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			t := o.frameTime(i)
			surface := ocean.NewSurface(grid)
			surface.Update(&o.Params, t)

			img := scale(surface.Image(), o.Size)
			path, err := shots.CaptureAs(img, fmt.Sprintf("sea_%04d.png", i))
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			lo, hi := surface.ElevationRange()
			log.Debug("frame written",
				zap.Int("frame", i),
				zap.Float32("t", t),
				zap.Float32("min_elevation", lo),
				zap.Float32("max_elevation", hi),
				zap.String("path", path),
			)
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("snapshots written", zap.Int("frames", o.Frames), zap.String("dir", o.OutDir))
	return paths, nil
}

// scale resamples src to a size×size image.
func scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
