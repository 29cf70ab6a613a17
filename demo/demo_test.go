package demo_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/glprims/demo"
	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

type draw struct {
	mesh     mesh.Mesh
	uniforms render.Uniforms
}

type circle struct {
	cx, cy, r float64
	color     render.Color
}

// recorder is a Target that remembers every call.
type recorder struct {
	w, h    int
	clears  []render.Color
	draws   []draw
	circles []circle
	err     error
}

func (r *recorder) Size() (int, int)     { return r.w, r.h }
func (r *recorder) Clear(c render.Color) { r.clears = append(r.clears, c) }
func (r *recorder) DrawMesh(m mesh.Mesh, u render.Uniforms) error {
	if err := render.CheckDraw(m, u); err != nil {
		return err
	}
	r.draws = append(r.draws, draw{m, u})
	return r.err
}
func (r *recorder) FillCircle(cx, cy, rad float64, c render.Color) error {
	r.circles = append(r.circles, circle{cx, cy, rad, c})
	return r.err
}

func TestDrawTriangle(t *testing.T) {
	rec := &recorder{w: 300, h: 150}
	require.NoError(t, demo.DrawTriangle(rec, nil))
	require.Len(t, rec.draws, 1)
	assert.Len(t, rec.clears, 1)
	assert.Equal(t, render.DefaultColor, rec.draws[0].uniforms.Color)
	assert.Equal(t, render.FlatProgram, rec.draws[0].uniforms.Program())
	assert.Equal(t, mesh.Triangle(), rec.draws[0].mesh)

	blue := render.Color{0, 0, 1, 1}
	require.NoError(t, demo.DrawTriangle(rec, &blue))
	assert.Equal(t, blue, rec.draws[1].uniforms.Color)
}

func TestDrawTriangles(t *testing.T) {
	rec := &recorder{w: 300, h: 150}
	rng := rand.New(rand.NewPCG(3, 4))
	require.NoError(t, demo.DrawTriangles(rec, rng, mesh.DefaultTriangleCount, nil))
	require.Len(t, rec.draws, 1, "one draw call for the whole field")
	assert.Equal(t, 300, rec.draws[0].mesh.VertexCount())

	rec = &recorder{}
	require.NoError(t, demo.DrawTriangles(rec, rng, 0, nil))
	assert.Empty(t, rec.draws)
	assert.Len(t, rec.clears, 1)
}

func TestDrawSphere(t *testing.T) {
	rec := &recorder{w: 640, h: 480}
	require.NoError(t, demo.DrawSphere(rec, demo.SphereOptions{}))
	require.Len(t, rec.draws, 1)
	d := rec.draws[0]
	assert.Equal(t, render.LitProgram, d.uniforms.Program())
	assert.Equal(t, 31*31, d.mesh.VertexCount())
	assert.Equal(t, 6*30*30, len(d.mesh.Indices))
	assert.Equal(t, render.DefaultCamera().Projection(640, 480), d.uniforms.Projection)

	_, err := demo.Lookup("sphere")
	require.NoError(t, err)

	err = demo.DrawSphere(rec, demo.SphereOptions{LatBands: 1})
	assert.Error(t, err)
	assert.Len(t, rec.draws, 1)
}

func TestDrawCircle(t *testing.T) {
	rec := &recorder{w: 200, h: 100}
	require.NoError(t, demo.DrawCircle(rec, demo.CircleOptions{}))
	require.Len(t, rec.circles, 1)
	assert.Equal(t, circle{100, 50, 40, render.DefaultColor}, rec.circles[0])

	require.NoError(t, demo.DrawCircle(rec, demo.CircleOptions{Center: &[2]float64{10, 20}, Radius: 5}))
	assert.Equal(t, circle{10, 20, 5, render.DefaultColor}, rec.circles[1])

	// The top-left corner is a valid centre.
	require.NoError(t, demo.DrawCircle(rec, demo.CircleOptions{Center: &[2]float64{0, 0}, Radius: 5}))
	assert.Equal(t, circle{0, 0, 5, render.DefaultColor}, rec.circles[2])

	assert.Error(t, demo.DrawCircle(rec, demo.CircleOptions{Radius: -1}))
}

func TestBackendErrorsWrap(t *testing.T) {
	glErr := render.GLError(0x502)
	rec := &recorder{w: 10, h: 10, err: glErr}
	err := demo.DrawTriangle(rec, nil)
	var got render.GLError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, glErr, got)
	assert.ErrorIs(t, demo.DrawCircle(rec, demo.CircleOptions{}), glErr)
}

// releaser counts Release calls.
type releaser struct {
	recorder
	released int
}

func (r *releaser) Release() { r.released++ }

func TestRunOnce(t *testing.T) {
	run, err := demo.Lookup("sphere")
	require.NoError(t, err)

	rel := &releaser{recorder: recorder{w: 32, h: 32}}
	require.NoError(t, demo.RunOnce(rel, run, demo.Params{}))
	assert.Len(t, rel.draws, 1)
	assert.Equal(t, 1, rel.released)

	// Released on failure too.
	rel = &releaser{recorder: recorder{w: 32, h: 32, err: render.GLError(0x505)}}
	assert.Error(t, demo.RunOnce(rel, run, demo.Params{}))
	assert.Equal(t, 1, rel.released)

	// Plain targets still run.
	rec := &recorder{w: 32, h: 32}
	require.NoError(t, demo.RunOnce(rec, run, demo.Params{}))
	assert.Len(t, rec.draws, 1)
}

func TestRoutines(t *testing.T) {
	assert.Equal(t, []string{"circle", "sphere", "triangle", "triangles"}, demo.Names())
	for _, name := range demo.Names() {
		rec := &recorder{w: 64, h: 64}
		run, err := demo.Lookup(name)
		require.NoError(t, err)
		require.NoError(t, run(rec, demo.Params{Rand: rand.New(rand.NewPCG(1, 1))}), name)
		assert.Equal(t, 1, len(rec.draws)+len(rec.circles), name)
	}
	_, err := demo.Lookup("cube")
	assert.Error(t, err)
}
