package demo

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

// Target is a backend that can run every routine.
type Target interface {
	render.Renderer
	render.Painter2D
}

// Params are the knobs shared by the command line tools and the browser
// exports.
type Params struct {
	Color     *render.Color
	Count     int
	Rand      *rand.Rand
	LatBands  int
	LonBands  int
	RotationY float32
}

// Routine runs one demo against t.
type Routine func(t Target, p Params) error

// Routines maps demo names to their runners.
var Routines = map[string]Routine{
	"triangle": func(t Target, p Params) error {
		return DrawTriangle(t, p.Color)
	},
	"triangles": func(t Target, p Params) error {
		n := p.Count
		if n == 0 {
			n = mesh.DefaultTriangleCount
		}
		return DrawTriangles(t, p.Rand, n, p.Color)
	},
	"sphere": func(t Target, p Params) error {
		return DrawSphere(t, SphereOptions{
			LatBands:  p.LatBands,
			LonBands:  p.LonBands,
			Color:     p.Color,
			RotationY: p.RotationY,
		})
	},
	"circle": func(t Target, p Params) error {
		t.Clear(render.BackgroundColor)
		return DrawCircle(t, CircleOptions{Color: p.Color})
	},
}

// RunOnce runs r on t and then releases the GPU objects t holds, if any.
// Targets created for a single call (one per browser export) go through here.
func RunOnce(t Target, r Routine, p Params) error {
	if rel, ok := t.(interface{ Release() }); ok {
		defer rel.Release()
	}
	return r(t, p)
}

// Lookup returns the routine called name.
func Lookup(name string) (Routine, error) {
	r, ok := Routines[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q, want one of %v", name, Names())
	}
	return r, nil
}

// Names lists the routine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Routines))
	for name := range Routines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
