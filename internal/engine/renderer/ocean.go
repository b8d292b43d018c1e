package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/engine/shader"
	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/internal/ocean"
	"github.com/Faultbox/raging-sea/internal/ocean/shaders"
	"github.com/Faultbox/raging-sea/pkg/math"
)

// OceanRenderer draws the ocean grid. In GPU mode the grid is static and
// the shaders evaluate waves and colors from uniforms. In CPU mode an
// ocean.Surface is evaluated every frame and streamed to the GPU.
type OceanRenderer struct {
	program *shader.Program
	grid    *ocean.Grid
	surface *ocean.Surface

	vao        uint32
	positions  uint32
	colors     uint32
	ebo        uint32
	indexCount int32

	wireframe bool
}

// NewOceanRenderer uploads grid and compiles the program for the chosen
// evaluator.
func NewOceanRenderer(grid *ocean.Grid, cpu bool) (*OceanRenderer, error) {
	o := &OceanRenderer{grid: grid}

	var err error
	if cpu {
		o.surface = ocean.NewSurface(grid)
		o.program, err = shader.New("surface", shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader)
	} else {
		o.program, err = shader.New("wave", shaders.WaveVertexShader, shaders.WaveFragmentShader)
	}
	if err != nil {
		return nil, fmt.Errorf("ocean renderer: %w", err)
	}

	o.createMesh()

	logger.Info("ocean renderer created",
		zap.Bool("cpu", cpu),
		zap.Int("points", grid.NumPoints()),
		zap.Int("triangles", len(grid.Indices)/3),
	)
	return o, nil
}

func (o *OceanRenderer) createMesh() {
	rest := o.grid.RestPositions()

	usage := uint32(gl.STATIC_DRAW)
	if o.surface != nil {
		usage = gl.DYNAMIC_DRAW
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	// Position attribute (location = 0)
	gl.GenBuffers(1, &o.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(rest)*4, gl.Ptr(rest), usage)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1), CPU mode only
	if o.surface != nil {
		gl.GenBuffers(1, &o.colors)
		gl.BindBuffer(gl.ARRAY_BUFFER, o.colors)
		gl.BufferData(gl.ARRAY_BUFFER, len(o.surface.Colors)*4, gl.Ptr(o.surface.Colors), gl.DYNAMIC_DRAW)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
		gl.EnableVertexAttribArray(1)
	}

	gl.GenBuffers(1, &o.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(o.grid.Indices)*4, gl.Ptr(o.grid.Indices), gl.STATIC_DRAW)
	o.indexCount = int32(len(o.grid.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// CPU reports whether the surface is evaluated on the CPU.
func (o *OceanRenderer) CPU() bool {
	return o.surface != nil
}

// Surface returns the CPU surface, or nil in GPU mode.
func (o *OceanRenderer) Surface() *ocean.Surface {
	return o.surface
}

// Wireframe reports whether the grid is drawn as lines.
func (o *OceanRenderer) Wireframe() bool {
	return o.wireframe
}

// SetWireframe switches between filled and line rendering.
func (o *OceanRenderer) SetWireframe(on bool) {
	o.wireframe = on
}

// Render draws the surface at time t.
func (o *OceanRenderer) Render(p *ocean.Params, t float32, viewProj math.Mat4) {
	o.program.Use()
	o.program.SetMat4("uViewProj", viewProj)

	if o.surface != nil {
		o.surface.Update(p, t)
		gl.BindBuffer(gl.ARRAY_BUFFER, o.positions)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(o.surface.Positions)*4, gl.Ptr(o.surface.Positions))
		gl.BindBuffer(gl.ARRAY_BUFFER, o.colors)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(o.surface.Colors)*4, gl.Ptr(o.surface.Colors))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	} else {
		o.setWaveUniforms(p, t)
	}

	if o.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(o.vao)
	gl.DrawElements(gl.TRIANGLES, o.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if o.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (o *OceanRenderer) setWaveUniforms(p *ocean.Params, t float32) {
	o.program.SetFloat("uTime", t)
	o.program.SetFloat("uElevation", p.Elevation)
	o.program.SetVec2("uFrequency", p.FrequencyX, p.FrequencyY)
	o.program.SetFloat("uSpeed", p.Speed)
	o.program.SetVec3("uDepthColor", p.DepthColor.R, p.DepthColor.G, p.DepthColor.B)
	o.program.SetVec3("uSurfaceColor", p.SurfaceColor.R, p.SurfaceColor.G, p.SurfaceColor.B)
	o.program.SetFloat("uColorOffset", p.ColorOffset)
	o.program.SetFloat("uColorMultiplier", p.ColorMultiplier)
}

// Destroy releases GL resources.
func (o *OceanRenderer) Destroy() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	for _, buf := range []*uint32{&o.positions, &o.colors, &o.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if o.program != nil {
		o.program.Delete()
	}
}
