package ocean

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Default grid dimensions.
const (
	DefaultSize     = 2.0
	DefaultSegments = 128
)

// Grid is a flat size×size plane in XZ, centred at the origin, split into
// segments×segments quads. Rest positions never change after NewGrid.
type Grid struct {
	Size     float32
	Segments int

	// Points holds x,z pairs, row-major with z as the row.
	Points []float32
	// Indices lists two counter-clockwise triangles per quad.
	Indices []uint32
}

// NewGrid builds a grid. segments must be at least 1.
func NewGrid(size float32, segments int) (*Grid, error) {
	if segments < 1 {
		return nil, fmt.Errorf("grid segments must be >= 1, got %d", segments)
	}
	if !(size > 0) || math.IsInf(float64(size), 0) {
		return nil, fmt.Errorf("grid size must be positive and finite, got %v", size)
	}

	row := segments + 1
	g := &Grid{
		Size:     size,
		Segments: segments,
		Points:   make([]float32, 0, row*row*2),
		Indices:  make([]uint32, 0, segments*segments*6),
	}

	half := size / 2
	step := size / float32(segments)
	for iz := 0; iz < row; iz++ {
		z := -half + float32(iz)*step
		for ix := 0; ix < row; ix++ {
			x := -half + float32(ix)*step
			g.Points = append(g.Points, x, z)
		}
	}

	for iz := 0; iz < segments; iz++ {
		for ix := 0; ix < segments; ix++ {
			a := uint32(iz*row + ix)
			b := a + 1
			c := a + uint32(row)
			d := c + 1
			g.Indices = append(g.Indices, a, c, b, b, c, d)
		}
	}

	return g, nil
}

// NumPoints returns the number of surface points.
func (g *Grid) NumPoints() int {
	return len(g.Points) / 2
}

// Point returns the rest position of point i.
func (g *Grid) Point(i int) (x, z float32) {
	return g.Points[i*2], g.Points[i*2+1]
}

// RestPositions returns x,y,z triples with y = 0, ready for a static VBO.
func (g *Grid) RestPositions() []float32 {
	out := make([]float32, 0, g.NumPoints()*3)
	for i := 0; i < g.NumPoints(); i++ {
		x, z := g.Point(i)
		out = append(out, x, 0, z)
	}
	return out
}

// Surface evaluates the wave and color functions over a grid on the CPU.
type Surface struct {
	grid *Grid

	// Positions holds displaced x,y,z triples after Update.
	Positions []float32
	// Colors holds r,g,b triples after Update.
	Colors []float32

	minElevation float32
	maxElevation float32
}

// NewSurface allocates output buffers for grid.
func NewSurface(grid *Grid) *Surface {
	n := grid.NumPoints()
	s := &Surface{
		grid:      grid,
		Positions: grid.RestPositions(),
		Colors:    make([]float32, n*3),
	}
	return s
}

// Update evaluates every point at time t.
func (s *Surface) Update(p *Params, t float32) {
	s.minElevation = float32(math.Inf(1))
	s.maxElevation = float32(math.Inf(-1))

	for i := 0; i < s.grid.NumPoints(); i++ {
		x, z := s.grid.Point(i)
		e := Elevation(p, x, z, t)
		c := Color(p, e)

		s.Positions[i*3+1] = e
		s.Colors[i*3] = c.R
		s.Colors[i*3+1] = c.G
		s.Colors[i*3+2] = c.B

		if e < s.minElevation {
			s.minElevation = e
		}
		if e > s.maxElevation {
			s.maxElevation = e
		}
	}
}

// ElevationRange returns the extremes seen by the last Update.
func (s *Surface) ElevationRange() (lo, hi float32) {
	return s.minElevation, s.maxElevation
}

// Image returns the per-point colors of the last Update as a
// (segments+1)² image, x to the right and z downwards.
func (s *Surface) Image() *image.RGBA {
	row := s.grid.Segments + 1
	img := image.NewRGBA(image.Rect(0, 0, row, row))
	for i := 0; i < s.grid.NumPoints(); i++ {
		img.SetRGBA(i%row, i/row, color.RGBA{
			R: channelByte(s.Colors[i*3]),
			G: channelByte(s.Colors[i*3+1]),
			B: channelByte(s.Colors[i*3+2]),
			A: 0xff,
		})
	}
	return img
}
