// Package shader compiles GLSL programs and caches their uniform locations.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/raging-sea/internal/logger"
	"github.com/Faultbox/raging-sea/pkg/math"
)

// Program is a linked shader program.
type Program struct {
	id       uint32
	name     string
	uniforms map[string]int32
}

// New compiles vertex and fragment sources and links them. name is used
// in log and error messages only.
func New(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	logger.Debug("shader program linked", zap.String("name", name), zap.Uint32("id", id))
	return &Program{id: id, name: name, uniforms: make(map[string]int32)}, nil
}

// ID returns the GL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of a uniform, or -1 when the linker
// dropped it. Missing uniforms are logged once.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	if loc < 0 {
		logger.Warn("uniform not active", zap.String("program", p.name), zap.String("uniform", name))
	}
	p.uniforms[name] = loc
	return loc
}

// SetFloat sets a float uniform. The program must be in use.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, x, y float32) {
	gl.Uniform2f(p.Uniform(name), x, y)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, x, y, z float32) {
	gl.Uniform3f(p.Uniform(name), x, y, z)
}

// SetMat4 sets a column-major mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLen, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLen, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return "(no info log)"
	}
	buf := make([]byte, length)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// GetUniform returns the uniform location for the given name, or -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
