//go:build js && wasm

// Command primwasm exposes the primitive demos to JavaScript. Build it with
// GOOS=js GOARCH=wasm and load it next to wasm_exec.js; it registers
//
//	drawTriangle(canvasId, color?)
//	drawTriangles(canvasId, color?)
//	drawSphere(canvasId, color?)
//	drawCircle(canvasId, color?)
//
// on the global object. color is an optional [r, g, b, a] array. Each
// function returns null on success or an error message.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/paperboard/glprims/backend/webgl"
	"github.com/paperboard/glprims/demo"
	"github.com/paperboard/glprims/render"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	render.SetLogger(logger)

	export("drawTriangle", glRoutine("triangle"))
	export("drawTriangles", glRoutine("triangles"))
	export("drawSphere", glRoutine("sphere"))
	export("drawCircle", drawCircle)
	logger.Info("primwasm: ready", "exports", demo.Names())

	// keep the callbacks alive
	select {}
}

type handler func(canvasID string, p demo.Params) error

// export registers h as a global JS function taking (canvasId, color?).
func export(name string, h handler) {
	js.Global().Set(name, js.FuncOf(func(this js.Value, args []js.Value) any {
		err := call(h, args)
		if err != nil {
			render.Logger().Error("primwasm: "+name, "err", err)
			return err.Error()
		}
		return nil
	}))
}

func call(h handler, args []js.Value) error {
	if len(args) < 1 || args[0].Type() != js.TypeString {
		return errors.New("first argument must be a canvas id")
	}
	var p demo.Params
	if len(args) > 1 && args[1].Truthy() {
		c, err := colorArg(args[1])
		if err != nil {
			return err
		}
		p.Color = &c
	}
	return h(args[0].String(), p)
}

func colorArg(v js.Value) (render.Color, error) {
	if v.Type() == js.TypeString {
		return render.ParseColor(v.String())
	}
	if v.Type() != js.TypeObject || v.Get("length").IsUndefined() {
		return render.Color{}, fmt.Errorf("color must be an array of numbers, got %v", v.Type())
	}
	n := v.Length()
	f := make([]float32, n)
	for i := range f {
		f[i] = float32(v.Index(i).Float())
	}
	return render.ColorFromFloats(f)
}

// glRoutine runs the named demo on a fresh WebGL context and frees its
// buffers and programs afterwards.
func glRoutine(name string) handler {
	return func(canvasID string, p demo.Params) error {
		run, err := demo.Lookup(name)
		if err != nil {
			return err
		}
		can, err := webgl.Open(canvasID)
		if err != nil {
			return err
		}
		return demo.RunOnce(can, run, p)
	}
}

// drawCircle paints through the canvas 2D context.
func drawCircle(canvasID string, p demo.Params) error {
	c2, err := webgl.Open2D(canvasID)
	if err != nil {
		return err
	}
	c2.Clear(render.BackgroundColor)
	return demo.DrawCircle(c2, demo.CircleOptions{Color: p.Color})
}
