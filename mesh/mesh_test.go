package mesh_test

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/glprims/mesh"
)

func TestTriangle(t *testing.T) {
	m := mesh.Triangle()
	require.NoError(t, m.Validate())
	assert.False(t, m.Indexed())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.ElementCount())
	assert.Equal(t, []float32{0, 0.5, 0, -0.5, -0.5, 0, 0.5, -0.5, 0}, m.Positions)

	tris := m.Triangles()
	require.Len(t, tris, 1)
	assert.Equal(t, ms3.Vec{Y: 0.5}, tris[0][0])
}

func TestRandomTriangles(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := mesh.RandomTriangles(rng, mesh.DefaultTriangleCount)
	require.NoError(t, m.Validate())
	assert.Equal(t, 3*mesh.DefaultTriangleCount, m.VertexCount())

	for i, tri := range m.Triangles() {
		top, left, right := tri[0], tri[1], tri[2]
		x, y := top.X, top.Y-0.05
		assert.True(t, x >= -0.5 && x < 0.5, "triangle %d x offset %v", i, x)
		assert.True(t, y >= -0.5-1e-6 && y < 0.5+1e-6, "triangle %d y offset %v", i, y)
		assert.InDelta(t, x-0.05, left.X, 1e-6)
		assert.InDelta(t, x+0.05, right.X, 1e-6)
		assert.InDelta(t, left.Y, right.Y, 1e-6)
		assert.InDelta(t, top.Y-0.1, left.Y, 1e-6)
		assert.Zero(t, top.Z+left.Z+right.Z)
	}
}

func TestRandomTrianglesSeeded(t *testing.T) {
	a := mesh.RandomTriangles(rand.New(rand.NewPCG(7, 7)), 10)
	b := mesh.RandomTriangles(rand.New(rand.NewPCG(7, 7)), 10)
	assert.Equal(t, a, b)

	empty := mesh.RandomTriangles(nil, 0)
	assert.Zero(t, empty.VertexCount())
	assert.NoError(t, empty.Validate())

	unseeded := mesh.RandomTriangles(nil, 4)
	assert.Equal(t, 12, unseeded.VertexCount())
}

func TestCircle(t *testing.T) {
	m := mesh.Circle(1, 2, 3, 16)
	require.NoError(t, m.Validate())
	assert.Equal(t, 16*3, m.VertexCount())
	for _, tri := range m.Triangles() {
		assert.Equal(t, ms3.Vec{X: 1, Y: 2}, tri[0])
		for _, v := range tri[1:] {
			r := math32.Hypot(v.X-1, v.Y-2)
			assert.InDelta(t, 3, r, 1e-5)
		}
	}
	assert.Equal(t, 9, mesh.Circle(0, 0, 1, 1).VertexCount())
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    mesh.Mesh
	}{
		{"ragged positions", mesh.Mesh{Positions: []float32{0, 0}}},
		{"normal mismatch", mesh.Mesh{Positions: []float32{0, 0, 0, 1, 1, 1, 2, 2, 2}, Normals: []float32{0, 0, 1}}},
		{"partial triangle", mesh.Mesh{Positions: []float32{0, 0, 0, 1, 1, 1}}},
		{"index out of range", mesh.Mesh{Positions: []float32{0, 0, 0, 1, 1, 1, 2, 2, 2}, Indices: []uint16{0, 1, 3}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.m.Validate())
		})
	}
}

func TestCircleSegments(t *testing.T) {
	assert.Equal(t, 16, mesh.CircleSegments(0))
	assert.Equal(t, 16, mesh.CircleSegments(5))
	assert.Equal(t, 62, mesh.CircleSegments(40))
	assert.Equal(t, 256, mesh.CircleSegments(1e6))
}
