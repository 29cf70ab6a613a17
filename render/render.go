// Package render defines what a drawing backend must provide to run the
// primitive demos, together with the pieces every backend shares: shader
// sources, camera and lighting uniforms, colours and error types.
//
// Backends live under backend/: gl21 for desktop OpenGL, webgl for a
// browser canvas and soft for headless rendering to an image.
package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glprims/mesh"
)

// Renderer draws meshes with a compiled shader program.
type Renderer interface {
	// Size is the drawing buffer size in pixels.
	Size() (width, height int)
	// Clear fills the colour and depth buffers.
	Clear(c Color)
	// DrawMesh binds the program selected by u, uploads m and issues one
	// draw call.
	DrawMesh(m mesh.Mesh, u Uniforms) error
}

// Painter2D fills shapes through an immediate-mode 2D context, in pixel
// coordinates with the origin at the top left.
type Painter2D interface {
	Size() (width, height int)
	FillCircle(cx, cy, r float64, c Color) error
}

// ErrNoNormals is returned when a lit draw is given a mesh without normals.
var ErrNoNormals = errors.New("render: lit program needs vertex normals")

// CheckDraw validates m against the program u selects. Backends call it
// before touching any GPU state.
func CheckDraw(m mesh.Mesh, u Uniforms) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if u.Program() == LitProgram && len(m.Normals) == 0 {
		return ErrNoNormals
	}
	return nil
}

// BackgroundColor is the clear colour used by the demos.
var BackgroundColor = Color{0, 0, 0, 1}

// PixelUniforms draws positions given in pixels, origin top-left, on a
// viewport of the given size.
func PixelUniforms(c Color, width, height int) Uniforms {
	u := FlatUniforms(c)
	u.Projection = mgl32.Ortho2D(0, float32(width), float32(height), 0)
	return u
}
