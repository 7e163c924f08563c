package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gregjohnson2017/bounce/pkg/log"
)

// Program is a linked shader program with its uniform locations cached.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// ErrProgramLink indicates that a program failed to link
const ErrProgramLink log.ConstErr = "failed to link program"

// ErrUniformName indicates that a uniform is not active in the program
const ErrUniformName log.ConstErr = "invalid uniform name"

// NewProgram attaches the given shaders to a new shader program and links
// it.
func NewProgram(shaders ...Shader) (*Program, error) {
	prog := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(prog, shader.id)
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)

		info := string(make([]byte, logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(info))
		gl.DeleteProgram(prog)

		return nil, fmt.Errorf("%w: %v", ErrProgramLink, info)
	}

	return &Program{id: prog, uniforms: make(map[string]int32)}, nil
}

func (p *Program) uniform(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc == -1 {
		return -1, fmt.Errorf("%w: %q", ErrUniformName, name)
	}
	p.uniforms[name] = loc
	return loc, nil
}

// UploadUniform uploads between 1 and 4 float32 values to the named
// uniform.
func (p *Program) UploadUniform(name string, data ...float32) error {
	loc, err := p.uniform(name)
	if err != nil {
		return err
	}
	gl.UseProgram(p.id)
	switch len(data) {
	case 1:
		gl.Uniform1f(loc, data[0])
	case 2:
		gl.Uniform2f(loc, data[0], data[1])
	case 3:
		gl.Uniform3f(loc, data[0], data[1], data[2])
	case 4:
		gl.Uniform4f(loc, data[0], data[1], data[2], data[3])
	default:
		gl.UseProgram(0)
		return fmt.Errorf("uniform %q: cannot upload %v values", name, len(data))
	}
	gl.UseProgram(0)
	return nil
}

// Bind makes OpenGL use this program
func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

// Unbind sets the current program ID to 0
func (p *Program) Unbind() {
	gl.UseProgram(0)
}

// Delete tells OpenGL to delete the program ID
func (p *Program) Delete() {
	gl.DeleteProgram(p.id)
}
