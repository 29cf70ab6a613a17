package render

import (
	"errors"
	"fmt"
)

// ErrNoContext is returned when a rendering context cannot be acquired.
var ErrNoContext = errors.New("render: unable to acquire rendering context")

// ShaderError is a failed shader compile. Log holds the driver's info log.
type ShaderError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("failed to compile %v shader: %s", e.Stage, e.Log)
}

// NewShaderError builds a ShaderError, substituting a generic message for an
// empty info log.
func NewShaderError(stage ShaderStage, infoLog string) *ShaderError {
	if infoLog == "" {
		infoLog = "unknown error creating shader"
	}
	return &ShaderError{Stage: stage, Log: infoLog}
}

// LinkError is a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "failed to link program: " + e.Log
}

// NewLinkError builds a LinkError, substituting a generic message for an
// empty info log.
func NewLinkError(infoLog string) *LinkError {
	if infoLog == "" {
		infoLog = "unknown error linking program"
	}
	return &LinkError{Log: infoLog}
}

// GLError is a code reported by glGetError.
type GLError uint32

// NoError is GL_NO_ERROR.
const NoError GLError = 0

var glErrorLookup = map[GLError]string{
	0x500: "GL_INVALID_ENUM",
	0x501: "GL_INVALID_VALUE",
	0x502: "GL_INVALID_OPERATION",
	0x503: "GL_STACK_OVERFLOW",
	0x504: "GL_STACK_UNDERFLOW",
	0x505: "GL_OUT_OF_MEMORY",
	0x506: "GL_INVALID_FRAMEBUFFER_OPERATION",
	0x507: "GL_CONTEXT_LOST",

	// WebGL only.
	0x9242: "CONTEXT_LOST_WEBGL",
}

func (e GLError) Error() string {
	if name, ok := glErrorLookup[e]; ok {
		return "GL_ERROR: " + name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %#x", uint32(e))
}

// DrainGLErrors calls get until it returns NoError and returns the first
// code seen, or nil. The loop is bounded because a lost context keeps
// reporting the same code.
func DrainGLErrors(get func() uint32) error {
	const maxErrors = 16
	var first GLError
	for i := 0; i < maxErrors; i++ {
		code := GLError(get())
		if code == NoError {
			break
		}
		if first == NoError {
			first = code
		}
	}
	if first == NoError {
		return nil
	}
	return first
}
