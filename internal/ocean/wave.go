package ocean

import "math"

// Elevation returns the vertical displacement of surface point (x, z) at
// time t. Both axes share the same time-scaled phase.
//
// The products are formed in float64 so large finite inputs never reach
// sin as ±Inf; the result is bounded by |p.Elevation|.
func Elevation(p *Params, x, z, t float32) float32 {
	phase := float64(t) * float64(p.Speed)
	wx := math.Sin(float64(x)*float64(p.FrequencyX) + phase)
	wz := math.Sin(float64(z)*float64(p.FrequencyY) + phase)
	return float32(float64(p.Elevation) * wx * wz)
}

// MixFactor maps an elevation to the [0, 1] blend between depth and
// surface colors. NaN maps to 0.
func MixFactor(p *Params, elevation float32) float32 {
	f := float64(elevation)*float64(p.ColorMultiplier) + float64(p.ColorOffset)
	return float32(clamp(f, 0, 1))
}

// Color returns the shaded color for an elevation.
func Color(p *Params, elevation float32) RGB {
	return p.DepthColor.Mix(p.SurfaceColor, MixFactor(p, elevation))
}

// Mix interpolates channel-wise from c (f=0) to other (f=1).
// f is used as given; callers clamp it.
func (c RGB) Mix(other RGB, f float32) RGB {
	return RGB{
		R: lerp(c.R, other.R, f),
		G: lerp(c.G, other.G, f),
		B: lerp(c.B, other.B, f),
	}
}

func lerp(a, b, f float32) float32 {
	return a*(1-f) + b*f
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	return float32(clamp(float64(v), 0, 1))
}
