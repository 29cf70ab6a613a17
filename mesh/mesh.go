// Package mesh builds the vertex, normal and index arrays for the primitives
// drawn by the demos. Everything here is plain float32 data ready to be
// copied into a GPU buffer; nothing in this package touches a graphics API.
package mesh

import (
	"errors"
	"fmt"

	"github.com/soypat/geometry/ms3"
)

const (
	vertexPositionSize = 3 // x,y,z
	verticesPerTri     = 3

	// MaxIndexedVertices is the largest vertex count addressable by uint16
	// element indices, the only index type WebGL 1 guarantees.
	MaxIndexedVertices = 1 << 16
)

// ErrTooManyVertices is returned when an indexed mesh would need indices
// wider than 16 bits.
var ErrTooManyVertices = errors.New("mesh: vertex count exceeds 16-bit index range")

// Mesh holds flat vertex data. Positions and Normals are xyz triples. When
// Indices is nil the positions are drawn as a plain triangle list.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices in m.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / vertexPositionSize
}

// Indexed reports whether m is drawn with an element buffer.
func (m Mesh) Indexed() bool { return m.Indices != nil }

// ElementCount is the count passed to the draw call: the number of indices
// for indexed meshes and the number of vertices otherwise.
func (m Mesh) ElementCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Validate checks the array lengths and index ranges of m.
func (m Mesh) Validate() error {
	if len(m.Positions)%vertexPositionSize != 0 {
		return fmt.Errorf("mesh: %d position floats is not a multiple of %d", len(m.Positions), vertexPositionSize)
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("mesh: %d normal floats for %d position floats", len(m.Normals), len(m.Positions))
	}
	if m.ElementCount()%verticesPerTri != 0 {
		return fmt.Errorf("mesh: %d elements is not a whole number of triangles", m.ElementCount())
	}
	n := m.VertexCount()
	if m.Indexed() && n > MaxIndexedVertices {
		return ErrTooManyVertices
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh: index %d at %d out of range [0,%d)", idx, i, n)
		}
	}
	return nil
}

func (m Mesh) vertex(i int) ms3.Vec {
	p := m.Positions[i*vertexPositionSize:]
	return ms3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

// TriangleCount is the number of triangles drawn for m.
func (m Mesh) TriangleCount() int {
	return m.ElementCount() / verticesPerTri
}

// TriangleVertices returns the vertex numbers of triangle i.
func (m Mesh) TriangleVertices(i int) (a, b, c int) {
	if m.Indexed() {
		return int(m.Indices[3*i]), int(m.Indices[3*i+1]), int(m.Indices[3*i+2])
	}
	return 3 * i, 3*i + 1, 3*i + 2
}

// Triangles expands m into a list of triangles in draw order.
func (m Mesh) Triangles() []ms3.Triangle {
	count := m.TriangleCount()
	tris := make([]ms3.Triangle, 0, count)
	for i := 0; i < count; i++ {
		a, b, c := m.TriangleVertices(i)
		tris = append(tris, ms3.Triangle{m.vertex(a), m.vertex(b), m.vertex(c)})
	}
	return tris
}

// VertexNormal returns the normal stored for vertex i, or the zero vector
// when m carries no normals.
func (m Mesh) VertexNormal(i int) ms3.Vec {
	if len(m.Normals) == 0 {
		return ms3.Vec{}
	}
	n := m.Normals[i*vertexPositionSize:]
	return ms3.Vec{X: n[0], Y: n[1], Z: n[2]}
}
