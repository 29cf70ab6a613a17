package mesh

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

const (
	// DefaultTriangleCount is the size of the random triangle field.
	DefaultTriangleCount = 100

	// triangleHalfSize is half the base of a field triangle in NDC units.
	triangleHalfSize = 0.05

	// fieldExtent bounds the random offsets to [-fieldExtent, fieldExtent).
	fieldExtent = 0.5
)

// Triangle returns a single triangle centred in normalized device
// coordinates: top, bottom-left, bottom-right.
func Triangle() Mesh {
	return Mesh{Positions: []float32{
		0.0, 0.5, 0.0, // top
		-0.5, -0.5, 0.0, // bottom left
		0.5, -0.5, 0.0, // bottom right
	}}
}

// RandomTriangles returns n small triangles scattered uniformly over the
// centre of the viewport. A nil rng draws from the global source.
func RandomTriangles(rng *rand.Rand, n int) Mesh {
	if n <= 0 {
		return Mesh{Positions: []float32{}}
	}
	float := rand.Float32
	if rng != nil {
		float = rng.Float32
	}
	const s = triangleHalfSize
	pos := make([]float32, 0, n*verticesPerTri*vertexPositionSize)
	for i := 0; i < n; i++ {
		x := float()*2*fieldExtent - fieldExtent
		y := float()*2*fieldExtent - fieldExtent
		pos = append(pos,
			x, y+s, 0, // top
			x-s, y-s, 0, // bottom left
			x+s, y-s, 0, // bottom right
		)
	}
	return Mesh{Positions: pos}
}

// Circle returns a filled circle as a triangle list fanned around its
// centre, for targets that lack a 2D context. Fewer than 3 segments are
// raised to 3.
func Circle(cx, cy, r float32, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	pos := make([]float32, 0, segments*verticesPerTri*vertexPositionSize)
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i < segments; i++ {
		a0 := float32(i) * step
		a1 := float32(i+1) * step
		pos = append(pos,
			cx, cy, 0,
			cx+r*math32.Cos(a0), cy+r*math32.Sin(a0), 0,
			cx+r*math32.Cos(a1), cy+r*math32.Sin(a1), 0,
		)
	}
	return Mesh{Positions: pos}
}

// CircleSegments picks a fan segment count for a circle of radius r pixels
// so that each edge spans roughly 4 pixels.
func CircleSegments(r float32) int {
	const (
		edgePixels  = 4
		minSegments = 16
		maxSegments = 256
	)
	n := int(2 * math32.Pi * r / edgePixels)
	return max(minSegments, min(n, maxSegments))
}
