// Package demo holds the primitive routines. Each one clears its target,
// builds geometry, binds uniforms and issues a single draw, against whatever
// backend it is handed.
package demo

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

// DrawTriangle draws one flat triangle. A nil colour draws red.
func DrawTriangle(r render.Renderer, c *render.Color) error {
	r.Clear(render.BackgroundColor)
	if err := r.DrawMesh(mesh.Triangle(), render.FlatUniforms(render.ColorOrDefault(c))); err != nil {
		return fmt.Errorf("draw triangle: %w", err)
	}
	return nil
}

// DrawTriangles draws n small triangles at random positions in a single
// draw call. A nil rng uses the global source.
func DrawTriangles(r render.Renderer, rng *rand.Rand, n int, c *render.Color) error {
	r.Clear(render.BackgroundColor)
	m := mesh.RandomTriangles(rng, n)
	if m.VertexCount() == 0 {
		return nil
	}
	if err := r.DrawMesh(m, render.FlatUniforms(render.ColorOrDefault(c))); err != nil {
		return fmt.Errorf("draw %d triangles: %w", n, err)
	}
	return nil
}

// SphereOptions configures DrawSphere. Zero fields take defaults.
type SphereOptions struct {
	Radius    float32
	LatBands  int
	LonBands  int
	Color     *render.Color
	Camera    *render.Camera
	Light     *render.Light
	RotationY float32 // radians about the Y axis
}

// Default sphere tessellation.
const (
	DefaultSphereBands  = 30
	DefaultSphereRadius = 1
)

func (opt SphereOptions) withDefaults() SphereOptions {
	if opt.Radius == 0 {
		opt.Radius = DefaultSphereRadius
	}
	if opt.LatBands == 0 {
		opt.LatBands = DefaultSphereBands
	}
	if opt.LonBands == 0 {
		opt.LonBands = DefaultSphereBands
	}
	if opt.Camera == nil {
		cam := render.DefaultCamera()
		opt.Camera = &cam
	}
	if opt.Light == nil {
		l := render.DefaultLight()
		opt.Light = &l
	}
	return opt
}

// DrawSphere tessellates a UV-sphere and draws it with the lit program
// through a perspective camera.
func DrawSphere(r render.Renderer, opt SphereOptions) error {
	opt = opt.withDefaults()
	m, err := mesh.UVSphere(opt.Radius, opt.LatBands, opt.LonBands)
	if err != nil {
		return err
	}
	w, h := r.Size()
	u := render.Uniforms{
		Color:      render.ColorOrDefault(opt.Color),
		Projection: opt.Camera.Projection(w, h),
		View:       opt.Camera.View(),
		Model:      mgl32.HomogRotate3DY(opt.RotationY),
		Light:      opt.Light,
	}
	r.Clear(render.BackgroundColor)
	if err := r.DrawMesh(m, u); err != nil {
		return fmt.Errorf("draw sphere: %w", err)
	}
	return nil
}

// CircleOptions configures DrawCircle. Coordinates are pixels with the
// origin at the top left. A nil Center is the middle of the canvas and a
// zero Radius fills 0.4 of the short side.
type CircleOptions struct {
	Center *[2]float64
	Radius float64
	Color  *render.Color
}

// circleFill is the default radius as a fraction of the short side.
const circleFill = 0.4

func (opt CircleOptions) withDefaults(w, h int) CircleOptions {
	if opt.Center == nil {
		opt.Center = &[2]float64{float64(w) / 2, float64(h) / 2}
	}
	if opt.Radius == 0 {
		opt.Radius = circleFill * float64(min(w, h))
	}
	return opt
}

// DrawCircle fills one circle through a 2D context.
func DrawCircle(p render.Painter2D, opt CircleOptions) error {
	w, h := p.Size()
	opt = opt.withDefaults(w, h)
	if opt.Radius < 0 {
		return fmt.Errorf("draw circle: negative radius %v", opt.Radius)
	}
	if err := p.FillCircle(opt.Center[0], opt.Center[1], opt.Radius, render.ColorOrDefault(opt.Color)); err != nil {
		return fmt.Errorf("draw circle: %w", err)
	}
	return nil
}
