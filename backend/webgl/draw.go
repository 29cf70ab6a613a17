//go:build js && wasm

package webgl

import (
	"syscall/js"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

const (
	vertexPositionSize = 3 // x,y,z
	vertexNormalSize   = 3 // nx,ny,nz
)

// DrawMesh uploads m, binds the uniforms of the program selected by u and
// draws m as triangles.
func (can *Canvas) DrawMesh(m mesh.Mesh, u render.Uniforms) error {
	if err := render.CheckDraw(m, u); err != nil {
		return err
	}
	if m.ElementCount() == 0 {
		return nil
	}
	p, err := can.program(u.Program())
	if err != nil {
		return err
	}
	gl := can.gl
	gl.Call("useProgram", p.handle)

	coordinates := p.attribs[render.AttribCoordinates]
	gl.Call("bindBuffer", can.arrayBuffer, can.vbo)
	gl.Call("bufferData", can.arrayBuffer, can.float32Array(m.Positions), can.staticDraw)
	gl.Call("vertexAttribPointer", coordinates, vertexPositionSize, can.float, false, 0, 0)
	gl.Call("enableVertexAttribArray", coordinates)
	defer gl.Call("disableVertexAttribArray", coordinates)

	if p.kind == render.LitProgram {
		normal := p.attribs[render.AttribNormal]
		gl.Call("bindBuffer", can.arrayBuffer, can.nbo)
		gl.Call("bufferData", can.arrayBuffer, can.float32Array(m.Normals), can.staticDraw)
		gl.Call("vertexAttribPointer", normal, vertexNormalSize, can.float, false, 0, 0)
		gl.Call("enableVertexAttribArray", normal)
		defer gl.Call("disableVertexAttribArray", normal)
	}

	can.setUniforms(p, u)

	if m.Indexed() {
		gl.Call("bindBuffer", can.elementArrayBuffer, can.ibo)
		gl.Call("bufferData", can.elementArrayBuffer, can.uint16Array(m.Indices), can.staticDraw)
		gl.Call("drawElements", can.triangles, len(m.Indices), can.unsignedShort, 0)
	} else {
		gl.Call("drawArrays", can.triangles, 0, m.VertexCount())
	}
	render.Logger().Debug("webgl: draw", "program", p.kind, "elements", m.ElementCount(), "indexed", m.Indexed())
	return can.glError()
}

func (can *Canvas) setUniforms(p *program, u render.Uniforms) {
	gl := can.gl
	gl.Call("uniformMatrix4fv", can.uniform(p, render.UniformProjection), false, can.mat4(u.Projection))
	gl.Call("uniformMatrix4fv", can.uniform(p, render.UniformView), false, can.mat4(u.View))
	gl.Call("uniformMatrix4fv", can.uniform(p, render.UniformModel), false, can.mat4(u.Model))
	gl.Call("uniform4f", can.uniform(p, render.UniformFragColor), u.Color.R, u.Color.G, u.Color.B, u.Color.A)

	if u.Light == nil {
		return
	}
	nm := u.NormalMatrix()
	toward := u.Light.Toward()
	gl.Call("uniformMatrix3fv", can.uniform(p, render.UniformNormalMatrix), false, can.float32Array(nm[:]))
	gl.Call("uniform3f", can.uniform(p, render.UniformLightDirection), toward.X(), toward.Y(), toward.Z())
	gl.Call("uniform3f", can.uniform(p, render.UniformAmbientColor), u.Light.Ambient.X(), u.Light.Ambient.Y(), u.Light.Ambient.Z())
	gl.Call("uniform3f", can.uniform(p, render.UniformDirectionalColor), u.Light.Directional.X(), u.Light.Directional.Y(), u.Light.Directional.Z())
}

// FillCircle draws a filled circle as a triangle fan through the flat
// program, in canvas pixel coordinates. Use Canvas2D for a true 2D context.
func (can *Canvas) FillCircle(cx, cy, r float64, c render.Color) error {
	w, h := can.Size()
	fan := mesh.Circle(float32(cx), float32(cy), float32(r), mesh.CircleSegments(float32(r)))
	return can.DrawMesh(fan, render.PixelUniforms(c, w, h))
}

func (can *Canvas) mat4(m mgl32.Mat4) js.Value {
	return can.float32Array(m[:])
}

// float32Array copies v into a new Float32Array.
func (can *Canvas) float32Array(v []float32) js.Value {
	const bytesFloat32 = 4
	b := can.copyBytes(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*bytesFloat32))
	return js.Global().Get("Float32Array").New(b, 0, len(v))
}

// uint16Array copies v into a new Uint16Array.
func (can *Canvas) uint16Array(v []uint16) js.Value {
	const bytesUint16 = 2
	b := can.copyBytes(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*bytesUint16))
	return js.Global().Get("Uint16Array").New(b, 0, len(v))
}

// copyBytes copies data into the scratch ArrayBuffer, growing it as needed.
// WebGL copies data on upload, so each view is only valid until the next
// copyBytes call.
func (can *Canvas) copyBytes(data []byte) js.Value {
	if can.scratch.IsUndefined() || can.scratch.Get("byteLength").Int() < len(data) {
		can.scratch = js.Global().Get("ArrayBuffer").New(len(data))
	}
	u8 := js.Global().Get("Uint8Array").New(can.scratch, 0, len(data))
	js.CopyBytesToJS(u8, data)
	return can.scratch
}
