// Command glprims opens a desktop window and draws one of the primitive
// demos every frame through OpenGL 2.1.
package main

import (
	"flag"
	"runtime"

	"github.com/paperboard/glprims/backend/gl21"
	"github.com/paperboard/glprims/internal/cli"
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func run() error {
	var (
		f       cli.Flags
		spin    float64
		samples int
	)
	f.Register(flag.CommandLine)
	flag.Float64Var(&spin, "spin", 0, "sphere rotation per frame in radians")
	flag.IntVar(&samples, "msaa", 4, "multisample count, 0 disables")
	flag.Parse()
	cli.SetupLogging(f.Verbose)

	routine, err := f.Routine()
	if err != nil {
		return err
	}

	win, err := gl21.Open(gl21.Config{
		Width:        f.Width,
		Height:       f.Height,
		Title:        "glprims: " + f.Demo,
		Samples:      samples,
		SwapInterval: 1,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	var frame float32
	return win.Loop(func() error {
		p, err := f.Params()
		if err != nil {
			return err
		}
		p.RotationY += frame * float32(spin)
		frame++
		return routine(win, p)
	})
}

func main() {
	if err := run(); err != nil {
		cli.Fatal(err)
	}
}
