// Command primrender draws one of the primitive demos without a GPU and
// writes the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/paperboard/glprims/backend/soft"
	"github.com/paperboard/glprims/internal/cli"
)

func run() error {
	var (
		f   cli.Flags
		out string
	)
	f.Register(flag.CommandLine)
	flag.StringVar(&out, "o", "", "output PNG path (default <demo>.png)")
	flag.Parse()
	cli.SetupLogging(f.Verbose)

	routine, err := f.Routine()
	if err != nil {
		return err
	}
	p, err := f.Params()
	if err != nil {
		return err
	}
	if out == "" {
		out = f.Demo + ".png"
	}

	tgt := soft.New(f.Width, f.Height)
	defer tgt.Close()
	if err := routine(tgt, p); err != nil {
		return err
	}
	if err := tgt.SavePNG(out); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	slog.Info("wrote image", "path", out, "demo", f.Demo, "width", f.Width, "height", f.Height)
	return nil
}

func main() {
	if err := run(); err != nil {
		cli.Fatal(err)
	}
}
