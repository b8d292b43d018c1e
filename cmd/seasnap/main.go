// seasnap renders top-down color maps of the ocean surface to PNG
// without a window or GPU.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
)

func main() {
	opts := defaultOptions()
	var preset string
	var verbose bool

	flag.Float64Var(&opts.Start, "t", opts.Start, "Time of the first frame in seconds")
	flag.IntVar(&opts.Frames, "frames", opts.Frames, "Number of frames to render")
	flag.Float64Var(&opts.FPS, "fps", opts.FPS, "Frames per second of simulated time")
	flag.IntVar(&opts.Size, "size", opts.Size, "Output image size in pixels")
	flag.StringVar(&opts.OutDir, "out", opts.OutDir, "Output directory")
	flag.StringVar(&preset, "preset", "", "Ocean parameter preset (YAML)")
	flag.IntVar(&opts.Segments, "segments", opts.Segments, "Grid segments per side")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "Concurrent frame workers")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seasnap [options]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := "info"
	if verbose {
		level = "debug"
	}
	if err := logger.Init(level, logger.FileConfig{}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if preset != "" {
		p, err := ocean.LoadPreset(preset, opts.Params)
		if err != nil {
			logger.Error("failed to load preset", zap.Error(err))
			os.Exit(1)
		}
		opts.Params = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths, err := renderFrames(ctx, opts)
	if err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

func defaultOptions() options {
	return options{
		Params:   ocean.DefaultParams(),
		Frames:   1,
		FPS:      30,
		Size:     512,
		OutDir:   "snapshots",
		Segments: 256,
		Workers:  runtime.NumCPU(),
	}
}
