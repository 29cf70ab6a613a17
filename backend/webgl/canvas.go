//go:build js && wasm

package webgl

import (
	"fmt"
	"syscall/js"

	"github.com/paperboard/glprims/render"
)

// Canvas is a WebGL rendering context attached to a <canvas> element. It
// implements render.Renderer and render.Painter2D.
type Canvas struct {
	el js.Value
	gl js.Value
	glConstants

	programs [2]*program // by render.ProgramKind
	vbo      js.Value    // positions
	nbo      js.Value    // normals
	ibo      js.Value    // indices
	scratch  js.Value    // ArrayBuffer reused for uploads
}

// glConstants caches the enum values read off the context.
type glConstants struct {
	arrayBuffer        js.Value
	elementArrayBuffer js.Value
	staticDraw         js.Value
	float              js.Value
	unsignedShort      js.Value
	triangles          js.Value
	colorBufferBit     int
	depthBufferBit     int
	depthTest          js.Value
	lequal             js.Value
	vertexShader       js.Value
	fragmentShader     js.Value
	compileStatus      js.Value
	linkStatus         js.Value
}

func constantsFor(gl js.Value) glConstants {
	return glConstants{
		arrayBuffer:        gl.Get("ARRAY_BUFFER"),
		elementArrayBuffer: gl.Get("ELEMENT_ARRAY_BUFFER"),
		staticDraw:         gl.Get("STATIC_DRAW"),
		float:              gl.Get("FLOAT"),
		unsignedShort:      gl.Get("UNSIGNED_SHORT"),
		triangles:          gl.Get("TRIANGLES"),
		colorBufferBit:     gl.Get("COLOR_BUFFER_BIT").Int(),
		depthBufferBit:     gl.Get("DEPTH_BUFFER_BIT").Int(),
		depthTest:          gl.Get("DEPTH_TEST"),
		lequal:             gl.Get("LEQUAL"),
		vertexShader:       gl.Get("VERTEX_SHADER"),
		fragmentShader:     gl.Get("FRAGMENT_SHADER"),
		compileStatus:      gl.Get("COMPILE_STATUS"),
		linkStatus:         gl.Get("LINK_STATUS"),
	}
}

// lookupCanvas finds the element with the given id.
func lookupCanvas(canvasID string) (js.Value, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Value{}, fmt.Errorf("%w: no document", render.ErrNoContext)
	}
	el := doc.Call("getElementById", canvasID)
	if !el.Truthy() {
		return js.Value{}, fmt.Errorf("%w: no <canvas> with id %q", render.ErrNoContext, canvasID)
	}
	return el, nil
}

// Open acquires a WebGL context on the canvas with the given id and sets the
// viewport to the canvas size.
func Open(canvasID string) (*Canvas, error) {
	el, err := lookupCanvas(canvasID)
	if err != nil {
		return nil, err
	}

	var ctx js.Value
	for _, contextType := range []string{
		"webgl",
		"experimental-webgl",
	} {
		ctx = el.Call("getContext", contextType)
		if ctx.Truthy() {
			break
		}
	}
	if !ctx.Truthy() {
		return nil, fmt.Errorf("%w: canvas %q has no webgl context", render.ErrNoContext, canvasID)
	}

	can := &Canvas{
		el:          el,
		gl:          ctx,
		glConstants: constantsFor(ctx),
	}
	w, h := can.Size()
	can.gl.Call("viewport", 0, 0, w, h)
	can.gl.Call("enable", can.depthTest)
	can.gl.Call("depthFunc", can.lequal)
	can.vbo = can.gl.Call("createBuffer")
	can.nbo = can.gl.Call("createBuffer")
	can.ibo = can.gl.Call("createBuffer")
	render.Logger().Info("webgl: context ready", "canvas", canvasID, "width", w, "height", h)
	return can, nil
}

// Size returns the size of the <canvas> element.
func (can *Canvas) Size() (int, int) {
	return can.el.Get("width").Int(), can.el.Get("height").Int()
}

// Clear fills the colour and depth buffers.
func (can *Canvas) Clear(c render.Color) {
	can.gl.Call("clearColor", c.R, c.G, c.B, c.A)
	can.gl.Call("clear", can.colorBufferBit|can.depthBufferBit)
}

// Release deletes the programs and buffers created by the canvas.
func (can *Canvas) Release() {
	for i, p := range can.programs {
		if p != nil {
			can.gl.Call("deleteProgram", p.handle)
			can.programs[i] = nil
		}
	}
	for _, buf := range []js.Value{can.vbo, can.nbo, can.ibo} {
		can.gl.Call("deleteBuffer", buf)
	}
}

// glError drains getError and returns the first error seen.
func (can *Canvas) glError() error {
	return render.DrainGLErrors(func() uint32 {
		return uint32(can.gl.Call("getError").Int())
	})
}
