//go:build !js

package gl21

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/paperboard/glprims/render"
)

// program is a linked shader program with its looked-up locations.
type program struct {
	id       uint32
	kind     render.ProgramKind
	attribs  map[string]uint32
	uniforms map[string]int32
}

// program returns the program for kind, compiling it on first use.
func (w *Window) program(kind render.ProgramKind) (*program, error) {
	if p := w.programs[kind]; p != nil {
		return p, nil
	}
	src := render.Sources(kind, render.GLSL120)
	id, err := newProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, fmt.Errorf("%v program: %w", kind, err)
	}
	p := &program{
		id:       id,
		kind:     kind,
		attribs:  make(map[string]uint32),
		uniforms: make(map[string]int32),
	}
	for _, name := range src.Attributes() {
		loc := gl.GetAttribLocation(id, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(id)
			return nil, fmt.Errorf("%v program: no attrib location %q", kind, name)
		}
		p.attribs[name] = uint32(loc)
	}
	w.programs[kind] = p
	render.Logger().Info("gl21: linked program", "program", kind)
	return p, nil
}

// uniform returns the location of name, or -1 when the driver optimised it
// out. GL silently ignores writes to -1.
func (p *program) uniform(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.uniforms[name] = loc
	}
	return loc
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {

	vertexShader, err := compileShader(vertexShaderSource, render.VertexStage)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, render.FragmentStage)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, render.NewLinkError(strings.TrimRight(log, "\x00"))

	}

	return program, nil

}

func compileShader(source string, stage render.ShaderStage) (uint32, error) {

	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == render.FragmentStage {
		shaderType = gl.FRAGMENT_SHADER
	}
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
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

		return 0, render.NewShaderError(stage, strings.TrimRight(log, "\x00"))

	}

	return shader, nil

}
