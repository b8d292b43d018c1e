package main

import (
	"context"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderFrames(t *testing.T) {
	o := defaultOptions()
	o.OutDir = t.TempDir()
	o.Frames = 3
	o.Size = 32
	o.Segments = 16
	o.Workers = 2

	paths, err := renderFrames(context.Background(), o)
	if err != nil {
		t.Fatalf("renderFrames: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(paths))
	}

	for i, p := range paths {
		want := filepath.Join(o.OutDir, []string{"sea_0000.png", "sea_0001.png", "sea_0002.png"}[i])
		if p != want {
			t.Errorf("paths[%d] = %q, want %q", i, p, want)
		}

		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Errorf("%s bounds = %v, want 32x32", p, b)
		}
	}
}

func TestRenderFramesCancelled(t *testing.T) {
	o := defaultOptions()
	o.OutDir = t.TempDir()
	o.Segments = 4

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderFrames(ctx, o); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*options)
	}{
		{"no frames", func(o *options) { o.Frames = 0 }},
		{"zero fps", func(o *options) { o.FPS = 0 }},
		{"zero size", func(o *options) { o.Size = 0 }},
		{"no workers", func(o *options) { o.Workers = 0 }},
		{"infinite start", func(o *options) { o.Start = math.Inf(1) }},
		{"NaN start", func(o *options) { o.Start = math.NaN() }},
		{"start beyond float32", func(o *options) { o.Start = 1e300 }},
		{"infinite fps", func(o *options) { o.FPS = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.modify(&o)
			if err := o.validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFrameTime(t *testing.T) {
	o := defaultOptions()
	o.Start = 2
	o.FPS = 4
	if got := o.frameTime(6); got != 3.5 {
		t.Errorf("frameTime(6) = %v, want 3.5", got)
	}
}
