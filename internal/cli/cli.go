// Package cli holds the flags and logging setup shared by the commands.
package cli

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/paperboard/glprims/demo"
	"github.com/paperboard/glprims/mesh"
	"github.com/paperboard/glprims/render"
)

// Flags are the demo options every command accepts.
type Flags struct {
	Demo     string
	Color    string
	Count    int
	Seed     uint64
	Width    int
	Height   int
	LatBands int
	LonBands int
	Rotate   float64
	Verbose  bool
}

// Register adds the flags to fs with their defaults.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Demo, "demo", "triangle", "demo to draw: "+strings.Join(demo.Names(), ", "))
	fs.StringVar(&f.Color, "color", "", `fill color as "r,g,b[,a]", "#rrggbb[aa]" or a CSS name (default red)`)
	fs.IntVar(&f.Count, "count", mesh.DefaultTriangleCount, "number of triangles for the triangles demo")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed for the triangles demo, 0 picks one")
	fs.IntVar(&f.Width, "width", 600, "output width in pixels")
	fs.IntVar(&f.Height, "height", 400, "output height in pixels")
	fs.IntVar(&f.LatBands, "lat", demo.DefaultSphereBands, "sphere latitude bands")
	fs.IntVar(&f.LonBands, "lon", demo.DefaultSphereBands, "sphere longitude bands")
	fs.Float64Var(&f.Rotate, "rotate", 0, "sphere rotation about Y in radians")
	fs.BoolVar(&f.Verbose, "v", false, "log debug output")
}

// Routine resolves the selected demo.
func (f *Flags) Routine() (demo.Routine, error) {
	return demo.Lookup(f.Demo)
}

// Params converts the flags to routine parameters. The random source is
// rebuilt from the seed on every call so repeated frames draw the same field.
func (f *Flags) Params() (demo.Params, error) {
	if f.Seed == 0 {
		f.Seed = uint64(time.Now().UnixNano())
	}
	p := demo.Params{
		Count:     f.Count,
		Rand:      rand.New(rand.NewPCG(f.Seed, f.Seed)),
		LatBands:  f.LatBands,
		LonBands:  f.LonBands,
		RotationY: float32(f.Rotate),
	}
	if f.Color != "" {
		c, err := render.ParseColor(f.Color)
		if err != nil {
			return demo.Params{}, fmt.Errorf("-color: %w", err)
		}
		p.Color = &c
	}
	return p, nil
}

// SetupLogging installs a text handler on stderr as the default logger and
// shares it with the render backends.
func SetupLogging(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)
	return logger
}

// Fatal logs err and exits with status 1.
func Fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
