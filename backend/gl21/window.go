//go:build !js

package gl21

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/glprims/render"
)

// Config describes the window to open.
type Config struct {
	Width, Height int
	Title         string
	Resizable     bool
	Samples       int // MSAA samples, 0 disables
	SwapInterval  int // 1 waits for vsync
}

// Default window settings.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
	DefaultTitle  = "glprims"
)

func (cfg Config) withDefaults() Config {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	return cfg
}

// Window is a glfw window with a current OpenGL 2.1 context. It implements
// render.Renderer and render.Painter2D.
type Window struct {
	cfg Config
	win *glfw.Window

	programs [2]*program // by render.ProgramKind
	vbo      uint32      // positions
	nbo      uint32      // normals
	ibo      uint32      // indices
}

// Open initializes glfw, creates the window and makes its context current.
func Open(cfg Config) (*Window, error) {
	cfg = cfg.withDefaults()

	// initalize glfw
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %v", render.ErrNoContext, err)
	}

	// use OpenGL v2.1
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	if cfg.Samples > 0 {
		glfw.WindowHint(glfw.Samples, cfg.Samples)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %v", render.ErrNoContext, err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: gl init: %v", render.ErrNoContext, err)
	}
	render.Logger().Info("gl21: context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)

	w := &Window{cfg: cfg, win: win}
	w.setup()
	return w, nil
}

func (w *Window) setup() {
	// match the viewport to the framebuffer, which differs from the window
	// size on high-DPI displays
	fbw, fbh := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	// if multiple shapes have same z-value, take their
	// draw order in account and show if possible
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	if w.cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	gl.GenBuffers(1, &w.vbo)
	gl.GenBuffers(1, &w.nbo)
	gl.GenBuffers(1, &w.ibo)
}

// Size returns the window size in screen coordinates, which is what the
// projection and 2D painting work in.
func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

// Clear fills the colour and depth buffers.
func (w *Window) Clear(c render.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Loop calls draw once per frame until the window is closed or draw fails.
func (w *Window) Loop(draw func() error) error {
	for !w.win.ShouldClose() {

		// draw into buffer
		if err := draw(); err != nil {
			return err
		}

		// render buffer to screen
		w.win.SwapBuffers()

		// glfw events?
		glfw.PollEvents()
	}
	return nil
}

// Close deletes GL objects, destroys the window and terminates glfw.
func (w *Window) Close() error {
	for i, p := range w.programs {
		if p != nil {
			gl.DeleteProgram(p.id)
			w.programs[i] = nil
		}
	}
	gl.DeleteBuffers(1, &w.vbo)
	gl.DeleteBuffers(1, &w.nbo)
	gl.DeleteBuffers(1, &w.ibo)
	err := glError()
	if err != nil {
		render.Logger().Warn("gl21: release", "err", err)
	}
	w.win.Destroy()
	glfw.Terminate()
	return err
}

// glError drains glGetError and returns the first error seen.
func glError() error {
	return render.DrainGLErrors(gl.GetError)
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
