//go:build js && wasm

package webgl

import (
	"fmt"
	"syscall/js"

	"github.com/paperboard/glprims/render"
)

type program struct {
	handle   js.Value
	kind     render.ProgramKind
	attribs  map[string]int
	uniforms map[string]js.Value
}

// program returns the program for kind, compiling it on first use.
func (can *Canvas) program(kind render.ProgramKind) (*program, error) {
	if p := can.programs[kind]; p != nil {
		return p, nil
	}
	src := render.Sources(kind, render.GLSLES100)
	handle, err := can.build(src)
	if err != nil {
		return nil, fmt.Errorf("%v program: %w", kind, err)
	}
	p := &program{
		handle:   handle,
		kind:     kind,
		attribs:  make(map[string]int),
		uniforms: make(map[string]js.Value),
	}
	for _, name := range src.Attributes() {
		loc := can.gl.Call("getAttribLocation", handle, name).Int()
		if loc < 0 {
			can.gl.Call("deleteProgram", handle)
			return nil, fmt.Errorf("%v program: no attrib location %q", kind, name)
		}
		p.attribs[name] = loc
	}
	can.programs[kind] = p
	render.Logger().Info("webgl: linked program", "program", kind)
	return p, nil
}

// uniform returns the location of name. A missing uniform yields null,
// which WebGL ignores on write.
func (can *Canvas) uniform(p *program, name string) js.Value {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = can.gl.Call("getUniformLocation", p.handle, name)
		p.uniforms[name] = loc
	}
	return loc
}

// build compiles and links src into a new program handle.
func (can *Canvas) build(src render.ProgramSource) (js.Value, error) {
	vs, err := can.compile(render.VertexStage, src.Vertex)
	if err != nil {
		return js.Value{}, err
	}
	defer can.gl.Call("deleteShader", vs)
	fs, err := can.compile(render.FragmentStage, src.Fragment)
	if err != nil {
		return js.Value{}, err
	}
	defer can.gl.Call("deleteShader", fs)

	prog := can.gl.Call("createProgram")
	can.gl.Call("attachShader", prog, vs)
	can.gl.Call("attachShader", prog, fs)
	can.gl.Call("linkProgram", prog)
	if !can.gl.Call("getProgramParameter", prog, can.linkStatus).Bool() {
		infoLog := can.gl.Call("getProgramInfoLog", prog)
		can.gl.Call("deleteProgram", prog)
		return js.Value{}, render.NewLinkError(jsString(infoLog))
	}
	return prog, nil
}

func (can *Canvas) compile(stage render.ShaderStage, source string) (js.Value, error) {
	shaderType := can.vertexShader
	if stage == render.FragmentStage {
		shaderType = can.fragmentShader
	}
	shader := can.gl.Call("createShader", shaderType)
	if !shader.Truthy() {
		return js.Value{}, render.NewShaderError(stage, "unable to create shader object")
	}
	can.gl.Call("shaderSource", shader, source)
	can.gl.Call("compileShader", shader)
	if !can.gl.Call("getShaderParameter", shader, can.compileStatus).Bool() {
		infoLog := can.gl.Call("getShaderInfoLog", shader)
		can.gl.Call("deleteShader", shader)
		return js.Value{}, render.NewShaderError(stage, jsString(infoLog))
	}
	return shader, nil
}

// jsString returns v as a string, or "" for null and undefined.
func jsString(v js.Value) string {
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
