package ocean

import "fmt"

// Control describes one editable scalar in Params. Min, Max and Step are
// UI hints only; the wave and color functions accept any finite value.
type Control struct {
	Name   string
	Group  string // empty for top-level controls
	Min    float32
	Max    float32
	Step   float32
	Format string

	Get func(*Params) float32
	Set func(*Params, float32)
}

// Value returns the current value of the control.
func (c Control) Value(p *Params) float32 {
	return c.Get(p)
}

// Nudge moves the value by steps increments, clamped to [Min, Max].
func (c Control) Nudge(p *Params, steps int) {
	v := c.Get(p) + float32(steps)*c.Step
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	c.Set(p, v)
}

// String formats the control as "name: value".
func (c Control) String(p *Params) string {
	return fmt.Sprintf("%s: "+c.Format, c.Name, c.Get(p))
}

// Controls enumerates the scalar parameters in panel order.
func Controls() []Control {
	return []Control{
		{
			Name: "Color multiplier", Min: 0, Max: 10, Step: 0.1, Format: "%.1f",
			Get: func(p *Params) float32 { return p.ColorMultiplier },
			Set: func(p *Params, v float32) { p.ColorMultiplier = v },
		},
		{
			Name: "Color offset", Min: 0, Max: 10, Step: 0.1, Format: "%.3f",
			Get: func(p *Params) float32 { return p.ColorOffset },
			Set: func(p *Params, v float32) { p.ColorOffset = v },
		},
		{
			Name: "Wave speed", Min: 0, Max: 1, Step: 0.001, Format: "%.3f",
			Get: func(p *Params) float32 { return p.Speed },
			Set: func(p *Params, v float32) { p.Speed = v },
		},
		{
			Name: "Wave elevation", Min: 0, Max: 1, Step: 0.001, Format: "%.3f",
			Get: func(p *Params) float32 { return p.Elevation },
			Set: func(p *Params, v float32) { p.Elevation = v },
		},
		{
			Name: "x", Group: "Frequency", Min: 0, Max: 10, Step: 0.01, Format: "%.2f",
			Get: func(p *Params) float32 { return p.FrequencyX },
			Set: func(p *Params, v float32) { p.FrequencyX = v },
		},
		{
			Name: "y", Group: "Frequency", Min: 0, Max: 10, Step: 0.01, Format: "%.2f",
			Get: func(p *Params) float32 { return p.FrequencyY },
			Set: func(p *Params, v float32) { p.FrequencyY = v },
		},
	}
}

// ColorControl describes one editable color. Set replaces all three
// channels at once.
type ColorControl struct {
	Name string
	Get  func(*Params) RGB
	Set  func(*Params, RGB)
}

// ColorControls enumerates the endpoint colors.
func ColorControls() []ColorControl {
	return []ColorControl{
		{
			Name: "Depth color",
			Get:  func(p *Params) RGB { return p.DepthColor },
			Set:  func(p *Params, c RGB) { p.DepthColor = c },
		},
		{
			Name: "Surface color",
			Get:  func(p *Params) RGB { return p.SurfaceColor },
			Set:  func(p *Params, c RGB) { p.SurfaceColor = c },
		},
	}
}
