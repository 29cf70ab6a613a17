// Package soft renders the demos without a GPU. It runs the same vertex
// transform and lighting as the shaders in Go and fills the resulting
// screen-space triangles through a gg 2D context, so the output can be
// written to a PNG or compared in tests.
package soft

import (
	"image"
	"io"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"github.com/soypat/geometry/ms3"

	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

// Target is an offscreen drawing surface. It implements render.Renderer and
// render.Painter2D.
type Target struct {
	dc     *gg.Context
	width  int
	height int
}

// New allocates a width x height target.
func New(width, height int) *Target {
	render.Logger().Info("soft: new target", "width", width, "height", height)
	return &Target{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Size returns the target size in pixels.
func (t *Target) Size() (int, int) { return t.width, t.height }

// Clear fills the whole target with c.
func (t *Target) Clear(c render.Color) {
	t.dc.ClearWithColor(toGG(c))
}

// face is a projected triangle waiting to be filled.
type face struct {
	pts   [3]mgl32.Vec2
	depth float32
	color render.Color
}

// DrawMesh transforms m by u and fills the triangles far to near. Faces of
// indexed meshes with normals are closed surfaces, so the ones turned away
// from the viewer are culled.
func (t *Target) DrawMesh(m mesh.Mesh, u render.Uniforms) error {
	if err := render.CheckDraw(m, u); err != nil {
		return err
	}
	mvp := u.MVP()
	mv := u.ModelView()
	nm := u.NormalMatrix()
	hasNormals := len(m.Normals) != 0
	cull := hasNormals && m.Indexed()

	tris := m.Triangles()
	faces := make([]face, 0, len(tris))
	for i, tri := range tris {
		f, visible := t.project(mvp, tri)
		if !visible {
			continue
		}
		f.color = u.Color
		if hasNormals {
			a, b, c := m.TriangleVertices(i)
			objNormal := ms3.Add(ms3.Add(m.VertexNormal(a), m.VertexNormal(b)), m.VertexNormal(c))
			n := nm.Mul3x1(vec3(objNormal)).Normalize()
			if cull {
				centroid := ms3.Scale(1.0/3, ms3.Add(ms3.Add(tri[0], tri[1]), tri[2]))
				eyePos := mv.Mul4x1(vec3(centroid).Vec4(1)).Vec3()
				if n.Dot(eyePos.Mul(-1)) <= 0 {
					continue
				}
			}
			if u.Light != nil {
				f.color = shade(u.Color, u.Light.Weight(n))
			}
		}
		faces = append(faces, f)
	}

	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth > faces[j].depth })
	for _, f := range faces {
		t.setColor(f.color)
		t.dc.MoveTo(float64(f.pts[0].X()), float64(f.pts[0].Y()))
		t.dc.LineTo(float64(f.pts[1].X()), float64(f.pts[1].Y()))
		t.dc.LineTo(float64(f.pts[2].X()), float64(f.pts[2].Y()))
		t.dc.ClosePath()
		if err := t.dc.Fill(); err != nil {
			return err
		}
	}
	render.Logger().Debug("soft: draw", "program", u.Program(), "triangles", len(tris), "filled", len(faces))
	return nil
}

// project maps tri to window coordinates. Triangles with a vertex behind the
// eye are dropped rather than clipped.
func (t *Target) project(mvp mgl32.Mat4, tri ms3.Triangle) (f face, visible bool) {
	for k, v := range tri {
		clip := mvp.Mul4x1(vec3(v).Vec4(1))
		if clip.W() <= 0 {
			return face{}, false
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		f.pts[k] = mgl32.Vec2{
			(ndc.X() + 1) / 2 * float32(t.width),
			(1 - ndc.Y()) / 2 * float32(t.height),
		}
		f.depth += ndc.Z() / 3
	}
	return f, true
}

// FillCircle fills a circle centred at (cx, cy) in pixels.
func (t *Target) FillCircle(cx, cy, r float64, c render.Color) error {
	t.setColor(c)
	t.dc.DrawCircle(cx, cy, r)
	return t.dc.Fill()
}

// Image returns the rendered image.
func (t *Target) Image() image.Image { return t.dc.Image() }

// SavePNG writes the target to path.
func (t *Target) SavePNG(path string) error { return t.dc.SavePNG(path) }

// EncodePNG writes the target as PNG to w.
func (t *Target) EncodePNG(w io.Writer) error { return t.dc.EncodePNG(w) }

// Close releases the underlying context.
func (t *Target) Close() error { return t.dc.Close() }

func (t *Target) setColor(c render.Color) {
	t.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}

func shade(c render.Color, w mgl32.Vec3) render.Color {
	return render.Color{R: c.R * w.X(), G: c.G * w.Y(), B: c.B * w.Z(), A: c.A}
}

func vec3(v ms3.Vec) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func toGG(c render.Color) gg.RGBA {
	return gg.RGBA2(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
}
