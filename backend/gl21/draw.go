//go:build !js

package gl21

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

const (
	bytesFloat32       = 4 // a float32 is 4 bytes
	bytesUint16        = 2 // a uint16 is 2 bytes
	vertexPositionSize = 3 // x,y,z
	vertexNormalSize   = 3 // nx,ny,nz
)

// DrawMesh uploads m, binds the uniforms of the program selected by u and
// draws m as triangles.
func (w *Window) DrawMesh(m mesh.Mesh, u render.Uniforms) error {
	if err := render.CheckDraw(m, u); err != nil {
		return err
	}
	if m.ElementCount() == 0 {
		return nil
	}
	p, err := w.program(u.Program())
	if err != nil {
		return err
	}

	// bind program
	gl.UseProgram(p.id)

	// copy vertex positions to VBO and point the attribute at it
	attribCoordinates := p.attribs[render.AttribCoordinates]
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*bytesFloat32, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointer(attribCoordinates, vertexPositionSize, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(attribCoordinates)
	defer gl.DisableVertexAttribArray(attribCoordinates)

	// normals only feed the lit program
	if p.kind == render.LitProgram {
		attribNormal := p.attribs[render.AttribNormal]
		gl.BindBuffer(gl.ARRAY_BUFFER, w.nbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*bytesFloat32, gl.Ptr(m.Normals), gl.STATIC_DRAW)
		gl.VertexAttribPointer(attribNormal, vertexNormalSize, gl.FLOAT, false, 0, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(attribNormal)
		defer gl.DisableVertexAttribArray(attribNormal)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	w.setUniforms(p, u)

	if m.Indexed() {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, w.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*bytesUint16, gl.Ptr(m.Indices), gl.STATIC_DRAW)
		gl.DrawElements(gl.TRIANGLES, int32(len(m.Indices)), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(m.VertexCount()))
	}
	render.Logger().Debug("gl21: draw", "program", p.kind, "elements", m.ElementCount(), "indexed", m.Indexed())

	// check for accumulated OpenGL errors
	return glError()
}

func (w *Window) setUniforms(p *program, u render.Uniforms) {
	projection, view, model := u.Projection, u.View, u.Model
	gl.UniformMatrix4fv(p.uniform(render.UniformProjection), 1, false, &projection[0])
	gl.UniformMatrix4fv(p.uniform(render.UniformView), 1, false, &view[0])
	gl.UniformMatrix4fv(p.uniform(render.UniformModel), 1, false, &model[0])
	gl.Uniform4f(p.uniform(render.UniformFragColor), u.Color.R, u.Color.G, u.Color.B, u.Color.A)

	if u.Light == nil {
		return
	}
	normalMatrix := u.NormalMatrix()
	toward := u.Light.Toward()
	gl.UniformMatrix3fv(p.uniform(render.UniformNormalMatrix), 1, false, &normalMatrix[0])
	gl.Uniform3fv(p.uniform(render.UniformLightDirection), 1, &toward[0])
	gl.Uniform3fv(p.uniform(render.UniformAmbientColor), 1, &u.Light.Ambient[0])
	gl.Uniform3fv(p.uniform(render.UniformDirectionalColor), 1, &u.Light.Directional[0])
}

// FillCircle draws a filled circle as a triangle fan through the flat
// program, in window pixel coordinates.
func (w *Window) FillCircle(cx, cy, r float64, c render.Color) error {
	width, height := w.Size()
	fan := mesh.Circle(float32(cx), float32(cy), float32(r), mesh.CircleSegments(float32(r)))
	return w.DrawMesh(fan, render.PixelUniforms(c, width, height))
}
