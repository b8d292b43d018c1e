package ocean

import (
	"testing"
)

func TestNewGridCounts(t *testing.T) {
	tests := []struct {
		segments   int
		wantPoints int
		wantIdx    int
	}{
		{1, 4, 6},
		{2, 9, 24},
		{128, 129 * 129, 128 * 128 * 6},
	}

	for _, tt := range tests {
		g, err := NewGrid(2, tt.segments)
		if err != nil {
			t.Fatalf("NewGrid(2, %d): %v", tt.segments, err)
		}
		if g.NumPoints() != tt.wantPoints {
			t.Errorf("segments %d: got %d points, want %d", tt.segments, g.NumPoints(), tt.wantPoints)
		}
		if len(g.Indices) != tt.wantIdx {
			t.Errorf("segments %d: got %d indices, want %d", tt.segments, len(g.Indices), tt.wantIdx)
		}
		for _, idx := range g.Indices {
			if int(idx) >= g.NumPoints() {
				t.Fatalf("segments %d: index %d out of range", tt.segments, idx)
			}
		}
	}
}

func TestNewGridBounds(t *testing.T) {
	g, err := NewGrid(2, 4)
	if err != nil {
		t.Fatal(err)
	}

	x, z := g.Point(0)
	if x != -1 || z != -1 {
		t.Errorf("first point = (%v, %v), want (-1, -1)", x, z)
	}
	x, z = g.Point(g.NumPoints() - 1)
	if x != 1 || z != 1 {
		t.Errorf("last point = (%v, %v), want (1, 1)", x, z)
	}
	x, z = g.Point(12) // centre of a 5x5 grid
	if x != 0 || z != 0 {
		t.Errorf("centre point = (%v, %v), want (0, 0)", x, z)
	}
}

func TestNewGridInvalid(t *testing.T) {
	if _, err := NewGrid(2, 0); err == nil {
		t.Error("expected error for zero segments")
	}
	if _, err := NewGrid(0, 8); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := NewGrid(-1, 8); err == nil {
		t.Error("expected error for negative size")
	}
}

func TestSurfaceUpdateMatchesFunctions(t *testing.T) {
	g, err := NewGrid(2, 16)
	if err != nil {
		t.Fatal(err)
	}
	s := NewSurface(g)
	p := DefaultParams()
	now := float32(1.75)

	s.Update(&p, now)

	lo, hi := s.ElevationRange()
	for i := 0; i < g.NumPoints(); i++ {
		x, z := g.Point(i)
		e := Elevation(&p, x, z, now)
		c := Color(&p, e)

		if s.Positions[i*3] != x || s.Positions[i*3+2] != z {
			t.Fatalf("point %d moved horizontally", i)
		}
		if s.Positions[i*3+1] != e {
			t.Fatalf("point %d: elevation %v, want %v", i, s.Positions[i*3+1], e)
		}
		if s.Colors[i*3] != c.R || s.Colors[i*3+1] != c.G || s.Colors[i*3+2] != c.B {
			t.Fatalf("point %d: color mismatch", i)
		}
		if e < lo || e > hi {
			t.Fatalf("point %d: elevation %v outside reported range [%v, %v]", i, e, lo, hi)
		}
	}
}

func TestSurfaceFlatWhenStill(t *testing.T) {
	g, _ := NewGrid(2, 8)
	s := NewSurface(g)
	p := DefaultParams()
	p.Elevation = 0

	s.Update(&p, 42)

	lo, hi := s.ElevationRange()
	if lo != 0 || hi != 0 {
		t.Errorf("expected flat surface, got range [%v, %v]", lo, hi)
	}
}

func TestSurfaceImage(t *testing.T) {
	g, _ := NewGrid(2, 3)
	s := NewSurface(g)
	p := DefaultParams()
	p.Elevation = 0
	p.ColorOffset = 1 // every point at the surface color

	s.Update(&p, 0)
	img := s.Image()

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("image size = %v, want 4x4", img.Bounds())
	}
	want := MustParseHex("#9bd8ff")
	px := img.RGBAAt(2, 1)
	if px.R != 0x9b || px.G != 0xd8 || px.B != 0xff || px.A != 0xff {
		t.Errorf("pixel = %+v, want %s", px, want.Hex())
	}
}
