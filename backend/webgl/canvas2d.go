//go:build js && wasm

package webgl

import (
	"fmt"
	"math"
	"syscall/js"

	"github.com/paperboard/glprims/render"
)

// Canvas2D is a CanvasRenderingContext2D. It implements render.Painter2D.
type Canvas2D struct {
	el  js.Value
	ctx js.Value
}

// Open2D acquires the 2d context of the canvas with the given id.
func Open2D(canvasID string) (*Canvas2D, error) {
	el, err := lookupCanvas(canvasID)
	if err != nil {
		return nil, err
	}
	ctx := el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("%w: canvas %q has no 2d context", render.ErrNoContext, canvasID)
	}
	render.Logger().Info("webgl: 2d context ready", "canvas", canvasID)
	return &Canvas2D{el: el, ctx: ctx}, nil
}

// Size returns the size of the <canvas> element.
func (c2 *Canvas2D) Size() (int, int) {
	return c2.el.Get("width").Int(), c2.el.Get("height").Int()
}

// Clear fills the whole canvas with c.
func (c2 *Canvas2D) Clear(c render.Color) {
	w, h := c2.Size()
	c2.ctx.Call("clearRect", 0, 0, w, h)
	c2.ctx.Set("fillStyle", c.CSS())
	c2.ctx.Call("fillRect", 0, 0, w, h)
}

// FillCircle fills a circle centred at (cx, cy).
func (c2 *Canvas2D) FillCircle(cx, cy, r float64, c render.Color) error {
	c2.ctx.Call("beginPath")
	c2.ctx.Call("arc", cx, cy, r, 0, 2*math.Pi)
	c2.ctx.Set("fillStyle", c.CSS())
	c2.ctx.Call("fill")
	return nil
}
