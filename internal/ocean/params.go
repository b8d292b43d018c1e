// Package ocean implements the procedural wave surface: the elevation
// function, the depth-based color function and the parameters they share.
package ocean

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default parameter values.
const (
	DefaultElevation       = 0.2
	DefaultFrequencyX      = 4.0
	DefaultFrequencyY      = 1.5
	DefaultSpeed           = 0.75
	DefaultDepthColor      = "#186691"
	DefaultSurfaceColor    = "#9bd8ff"
	DefaultColorOffset     = 0.168
	DefaultColorMultiplier = 2.8
)

// Params holds every knob read by Elevation and Color.
// A single instance is shared by the renderer and the debug panel.
type Params struct {
	Elevation       float32 `yaml:"elevation"`
	FrequencyX      float32 `yaml:"frequency_x"`
	FrequencyY      float32 `yaml:"frequency_y"`
	Speed           float32 `yaml:"speed"`
	DepthColor      RGB     `yaml:"depth_color"`
	SurfaceColor    RGB     `yaml:"surface_color"`
	ColorOffset     float32 `yaml:"color_offset"`
	ColorMultiplier float32 `yaml:"color_multiplier"`
}

// DefaultParams returns the stock ocean look.
func DefaultParams() Params {
	return Params{
		Elevation:       DefaultElevation,
		FrequencyX:      DefaultFrequencyX,
		FrequencyY:      DefaultFrequencyY,
		Speed:           DefaultSpeed,
		DepthColor:      MustParseHex(DefaultDepthColor),
		SurfaceColor:    MustParseHex(DefaultSurfaceColor),
		ColorOffset:     DefaultColorOffset,
		ColorMultiplier: DefaultColorMultiplier,
	}
}

// Finite reports whether every field holds a finite value.
func (p *Params) Finite() bool {
	values := []float32{
		p.Elevation, p.FrequencyX, p.FrequencyY, p.Speed,
		p.ColorOffset, p.ColorMultiplier,
		p.DepthColor.R, p.DepthColor.G, p.DepthColor.B,
		p.SurfaceColor.R, p.SurfaceColor.G, p.SurfaceColor.B,
	}
	for _, v := range values {
		if !finite(v) {
			return false
		}
	}
	return true
}

// Validate returns an error if any field is NaN or infinite.
func (p *Params) Validate() error {
	if !p.Finite() {
		return fmt.Errorf("ocean parameters must be finite: %+v", *p)
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float32
}

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", clamping out-of-range channels.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// Array returns the channels as an array, the layout GL and ImGui expect.
func (c RGB) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// RGBFromArray is the inverse of Array.
func RGBFromArray(a [3]float32) RGB {
	return RGB{R: a[0], G: a[1], B: a[2]}
}

// MarshalYAML stores colors as hex strings.
func (c RGB) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML accepts "#rrggbb".
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func channelByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
