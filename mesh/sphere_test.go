package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/glprims/mesh"
)

func TestUVSphereCounts(t *testing.T) {
	for _, tc := range []struct{ lat, lon int }{
		{2, 3}, {4, 8}, {30, 30}, {64, 32},
	} {
		m, err := mesh.UVSphere(1, tc.lat, tc.lon)
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, (tc.lat+1)*(tc.lon+1), m.VertexCount(), "%dx%d", tc.lat, tc.lon)
		assert.Equal(t, 6*tc.lat*tc.lon, len(m.Indices), "%dx%d", tc.lat, tc.lon)
		assert.Equal(t, len(m.Positions), len(m.Normals))
	}
}

func TestUVSphereGeometry(t *testing.T) {
	const radius = 2.5
	const tol = 1e-5
	m, err := mesh.UVSphere(radius, 12, 24)
	require.NoError(t, err)

	for i := 0; i < m.VertexCount(); i++ {
		n := m.VertexNormal(i)
		assert.InDelta(t, 1, ms3.Norm(n), tol, "normal %d", i)
		p := ms3.Vec{X: m.Positions[3*i], Y: m.Positions[3*i+1], Z: m.Positions[3*i+2]}
		assert.InDelta(t, radius, ms3.Norm(p), 1e-4, "position %d", i)
		assert.InDelta(t, 0, ms3.Norm(ms3.Sub(p, ms3.Scale(radius, n))), 1e-4, "position %d along normal", i)
	}

	// First ring sits on the +Y pole, last ring on -Y.
	assert.InDelta(t, radius, m.Positions[1], tol)
	last := m.VertexCount() - 1
	assert.InDelta(t, -radius, m.Positions[3*last+1], tol)

	// Seam column repeats the first column.
	const lon = 24
	for lat := 0; lat <= 12; lat++ {
		a := m.VertexNormal(lat * (lon + 1))
		b := m.VertexNormal(lat*(lon+1) + lon)
		assert.InDelta(t, 0, ms3.Norm(ms3.Sub(a, b)), tol)
	}
}

func TestUVSphereWinding(t *testing.T) {
	m, err := mesh.UVSphere(1, 8, 8)
	require.NoError(t, err)
	for i, tri := range m.Triangles() {
		e1 := ms3.Sub(tri[1], tri[0])
		e2 := ms3.Sub(tri[2], tri[0])
		face := ms3.Cross(e1, e2)
		if ms3.Norm(face) < 1e-6 {
			continue // degenerate pole triangle
		}
		centroid := ms3.Scale(1.0/3, ms3.Add(ms3.Add(tri[0], tri[1]), tri[2]))
		assert.Less(t, ms3.Dot(face, centroid), float32(0), "triangle %d", i)
	}
}

func TestUVSphereFirstQuad(t *testing.T) {
	m, err := mesh.UVSphere(1, 2, 3)
	require.NoError(t, err)
	// lon+1 = 4 vertices per ring.
	assert.Equal(t, []uint16{0, 4, 1, 4, 5, 1}, m.Indices[:6])
	assert.Equal(t, uint16(4*2+3), m.Indices[len(m.Indices)-2])
	assert.InDelta(t, 0, math32.Abs(m.Normals[0])+math32.Abs(m.Normals[2]), 1e-6)
}

func TestUVSphereErrors(t *testing.T) {
	_, err := mesh.UVSphere(0, 10, 10)
	assert.Error(t, err)
	_, err = mesh.UVSphere(-1, 10, 10)
	assert.Error(t, err)
	_, err = mesh.UVSphere(math32.NaN(), 10, 10)
	assert.Error(t, err)
	_, err = mesh.UVSphere(1, 1, 10)
	assert.Error(t, err)
	_, err = mesh.UVSphere(1, 10, 2)
	assert.Error(t, err)

	_, err = mesh.UVSphere(1, 256, 256)
	assert.True(t, errors.Is(err, mesh.ErrTooManyVertices), "got %v", err)

	for _, bands := range [][2]int{
		{math.MaxInt, math.MaxInt},
		{mesh.MaxIndexedVertices, 3},
		{2, mesh.MaxIndexedVertices},
	} {
		_, err = mesh.UVSphere(1, bands[0], bands[1])
		assert.ErrorIs(t, err, mesh.ErrTooManyVertices, "bands %v", bands)
	}

	// 255x255 bands is exactly 65536 vertices.
	m, err := mesh.UVSphere(1, 255, 255)
	require.NoError(t, err)
	assert.Equal(t, mesh.MaxIndexedVertices, m.VertexCount())
}
