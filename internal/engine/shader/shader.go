// Package shader compiles GLSL programs and uploads their uniforms.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/morivert/scrollstage/pkg/math"
)

// CompileProgram compiles and links a vertex/fragment pair into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compile(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compile(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		err := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %w", err)
	}
	return prog, nil
}

func compile(kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		err := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, err
	}
	return sh, nil
}

// infoLog reads the driver's log for a shader or program object.
func infoLog(id uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) error {
	var n int32
	param(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return errors.New("no info log")
	}
	buf := make([]byte, n)
	read(id, n, nil, &buf[0])
	return errors.New(strings.TrimRight(string(buf), "\x00\n"))
}

// Program is a linked program with its uniform locations resolved up front.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// NewProgram compiles a program and looks up the named uniforms. Missing
// uniforms resolve to -1, which GL ignores on upload.
func NewProgram(vertexSrc, fragmentSrc string, uniforms ...string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	p := &Program{ID: id, uniforms: make(map[string]int32, len(uniforms))}
	for _, name := range uniforms {
		p.uniforms[name] = gl.GetUniformLocation(id, gl.Str(name+"\x00"))
	}
	return p, nil
}

// Loc returns a resolved uniform location, or -1 if it was not requested.
func (p *Program) Loc(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m *math.Mat4) {
	gl.UniformMatrix4fv(p.Loc(name), 1, false, m.Ptr())
}

// SetVec3 uploads a vector.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Loc(name), v.X, v.Y, v.Z)
}

// SetFloat uploads a scalar.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.Loc(name), f)
}

// SetInt uploads an integer or sampler unit.
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Loc(name), i)
}

// SetBool uploads a bool as 0 or 1.
func (p *Program) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	gl.Uniform1i(p.Loc(name), i)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
