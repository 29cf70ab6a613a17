package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	FovY      float32 // radians
	Near, Far float32
	Eye       mgl32.Vec3
	Target    mgl32.Vec3
	Up        mgl32.Vec3
}

// DefaultCamera sits on +Z three units from the origin, looking down -Z.
func DefaultCamera() Camera {
	return Camera{
		FovY:   mgl32.DegToRad(45),
		Near:   0.1,
		Far:    100,
		Eye:    mgl32.Vec3{0, 0, 3},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

// Projection transforms eye coordinates to clip coordinates for a viewport
// of the given pixel size.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// View transforms world coordinates to eye coordinates.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Light is an ambient term plus one directional light. Direction is the way
// the light travels, in eye coordinates.
type Light struct {
	Direction   mgl32.Vec3
	Ambient     mgl32.Vec3
	Directional mgl32.Vec3
}

// DefaultLight shines from the upper right, behind the viewer.
func DefaultLight() Light {
	return Light{
		Direction:   mgl32.Vec3{-0.25, -0.25, -1}.Normalize(),
		Ambient:     mgl32.Vec3{0.2, 0.2, 0.2},
		Directional: mgl32.Vec3{0.8, 0.8, 0.8},
	}
}

// Toward returns the unit vector pointing back at the light, the value
// bound to the lightDirection uniform.
func (l Light) Toward() mgl32.Vec3 {
	d := l.Direction
	if d.Len() == 0 {
		return mgl32.Vec3{}
	}
	return d.Normalize().Mul(-1)
}

// Weight is the per-channel light reaching a surface with eye-space unit
// normal n. It is the same expression the lit vertex shader evaluates.
func (l Light) Weight(n mgl32.Vec3) mgl32.Vec3 {
	d := n.Dot(l.Toward())
	if d < 0 {
		d = 0
	}
	return l.Ambient.Add(l.Directional.Mul(d))
}

// Uniforms are the values bound before a draw call. A nil Light selects the
// flat program.
type Uniforms struct {
	Color      Color
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	Light      *Light
}

// FlatUniforms draws positions as given in normalized device coordinates.
func FlatUniforms(c Color) Uniforms {
	return Uniforms{
		Color:      c,
		Projection: mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Model:      mgl32.Ident4(),
	}
}

// ModelView is View*Model.
func (u Uniforms) ModelView() mgl32.Mat4 {
	return u.View.Mul4(u.Model)
}

// MVP is Projection*View*Model.
func (u Uniforms) MVP() mgl32.Mat4 {
	return u.Projection.Mul4(u.ModelView())
}

// NormalMatrix is the inverse transpose of the upper 3x3 of ModelView.
func (u Uniforms) NormalMatrix() mgl32.Mat3 {
	return NormalMatrix(u.ModelView())
}

// NormalMatrix returns the matrix that carries object-space normals into
// eye space under modelView.
func NormalMatrix(modelView mgl32.Mat4) mgl32.Mat3 {
	return modelView.Mat3().Inv().Transpose()
}

// Program selects the shader program for u.
func (u Uniforms) Program() ProgramKind {
	if u.Light != nil {
		return LitProgram
	}
	return FlatProgram
}
