package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// UV-sphere tessellation limits.
const (
	MinLatitudeBands  = 2
	MinLongitudeBands = 3
)

// UVSphere tessellates a sphere of the given radius into latBands rings of
// lonBands quads. Each quad becomes two triangles, wound clockwise when seen
// from outside, so draw it with face culling off. The seam column and both
// poles repeat vertices so that vertex (lat, lon) always lives at
// lat*(lonBands+1)+lon.
//
//	theta = lat * pi / latBands         // 0 at +Y pole, pi at -Y pole
//	phi   = lon * 2pi / lonBands
//	n     = (cos(phi)sin(theta), cos(theta), sin(phi)sin(theta))
func UVSphere(radius float32, latBands, lonBands int) (Mesh, error) {
	switch {
	case !(radius > 0):
		return Mesh{}, fmt.Errorf("mesh: sphere radius must be positive, got %v", radius)
	case latBands < MinLatitudeBands:
		return Mesh{}, fmt.Errorf("mesh: need at least %d latitude bands, got %d", MinLatitudeBands, latBands)
	case lonBands < MinLongitudeBands:
		return Mesh{}, fmt.Errorf("mesh: need at least %d longitude bands, got %d", MinLongitudeBands, lonBands)
	}
	// Bound each axis first so the product cannot overflow.
	if latBands >= MaxIndexedVertices || lonBands >= MaxIndexedVertices {
		return Mesh{}, fmt.Errorf("%w: %d latitude x %d longitude bands", ErrTooManyVertices, latBands, lonBands)
	}
	nverts := (latBands + 1) * (lonBands + 1)
	if nverts > MaxIndexedVertices {
		return Mesh{}, fmt.Errorf("%w: %d latitude x %d longitude bands gives %d vertices", ErrTooManyVertices, latBands, lonBands, nverts)
	}

	m := Mesh{
		Positions: make([]float32, 0, nverts*vertexPositionSize),
		Normals:   make([]float32, 0, nverts*vertexPositionSize),
		Indices:   make([]uint16, 0, 6*latBands*lonBands),
	}
	for lat := 0; lat <= latBands; lat++ {
		theta := float32(lat) * math32.Pi / float32(latBands)
		sinTheta, cosTheta := math32.Sincos(theta)
		for lon := 0; lon <= lonBands; lon++ {
			phi := float32(lon) * 2 * math32.Pi / float32(lonBands)
			sinPhi, cosPhi := math32.Sincos(phi)

			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta
			m.Normals = append(m.Normals, x, y, z)
			m.Positions = append(m.Positions, radius*x, radius*y, radius*z)
		}
	}

	for lat := 0; lat < latBands; lat++ {
		for lon := 0; lon < lonBands; lon++ {
			first := uint16(lat*(lonBands+1) + lon)
			second := first + uint16(lonBands) + 1
			m.Indices = append(m.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}
	return m, nil
}
