package opengl

import (
	"embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

type shaderStage struct {
	name string
	kind uint32
}

func (s shaderStage) String() string {
	if s.kind == gl.VERTEX_SHADER {
		return s.name + " vertex"
	}
	return s.name + " fragment"
}

// program is a linked shader program with its uniform locations cached
// by name.
type program struct {
	id       uint32
	uniforms map[string]int32
}

func shaderSource(name metadata.ShaderName, ext string) (string, error) {
	data, err := shaderFS.ReadFile("shaders/" + string(name) + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %s", core.ErrUnknownShader, name)
	}
	return string(data) + "\x00", nil
}

func newProgram(name metadata.ShaderName) (*program, error) {
	vertexSource, err := shaderSource(name, ".vert")
	if err != nil {
		return nil, err
	}
	fragmentSource, err := shaderSource(name, ".frag")
	if err != nil {
		return nil, err
	}

	vertexShader, err := compileShader(shaderStage{string(name), gl.VERTEX_SHADER}, vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(shaderStage{string(name), gl.FRAGMENT_SHADER}, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)

	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s: %s", core.ErrShaderLink, name, strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(id, vertexShader)
	gl.DetachShader(id, fragmentShader)

	return &program{
		id:       id,
		uniforms: make(map[string]int32),
	}, nil
}

func compileShader(stage shaderStage, source string) (uint32, error) {
	shader := gl.CreateShader(stage.kind)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s: %s", core.ErrShaderCompile, stage, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (p *program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		core.LogWarn("uniform %s is not used by program %d", name, p.id)
	}
	p.uniforms[name] = loc
	return loc
}

// setUniform uploads u. Matrices arrive row-major, so they are uploaded
// with transpose set.
func (p *program) setUniform(u metadata.Uniform) {
	loc := p.location(u.Name)
	if loc < 0 {
		return
	}
	switch u.Type {
	case metadata.ShaderUniformTypeMatrix4:
		gl.UniformMatrix4fv(loc, 1, true, &u.Data[0])
	case metadata.ShaderUniformTypeMatrix3:
		gl.UniformMatrix3fv(loc, 1, true, &u.Data[0])
	case metadata.ShaderUniformTypeFloat32_4:
		gl.Uniform4fv(loc, 1, &u.Data[0])
	case metadata.ShaderUniformTypeFloat32_3:
		gl.Uniform3fv(loc, 1, &u.Data[0])
	case metadata.ShaderUniformTypeFloat32_2:
		gl.Uniform2fv(loc, 1, &u.Data[0])
	case metadata.ShaderUniformTypeFloat32:
		gl.Uniform1f(loc, u.Data[0])
	}
}

func (p *program) destroy() {
	gl.DeleteProgram(p.id)
}
