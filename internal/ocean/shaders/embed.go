// Package shaders provides the embedded GLSL sources for the ocean surface.
package shaders

import _ "embed"

// WaveVertexShader displaces the grid on the GPU.
//
//go:embed wave.vert
var WaveVertexShader string

// WaveFragmentShader shades by elevation.
//
//go:embed wave.frag
var WaveFragmentShader string

// SurfaceVertexShader draws positions and colors computed on the CPU.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader passes the interpolated vertex color through.
//
//go:embed surface.frag
var SurfaceFragmentShader string
