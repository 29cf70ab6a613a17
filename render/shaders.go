package render

import "fmt"

// ShaderStage is the pipeline stage a shader is compiled for.
type ShaderStage uint8

const (
	VertexStage ShaderStage = iota + 1
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("INVALID_SHADER_STAGE(%02x)", uint8(s))
}

// ProgramKind names one of the two shader programs the demos use.
type ProgramKind uint8

const (
	// FlatProgram fills every fragment with fragColor.
	FlatProgram ProgramKind = iota
	// LitProgram shades with an ambient and one directional light.
	LitProgram
)

func (k ProgramKind) String() string {
	switch k {
	case FlatProgram:
		return "flat"
	case LitProgram:
		return "lit"
	}
	return fmt.Sprintf("INVALID_PROGRAM(%02x)", uint8(k))
}

// Attribute and uniform names shared by both programs.
const (
	AttribCoordinates = "coordinates"
	AttribNormal      = "normal"

	UniformProjection       = "projection"
	UniformView             = "view"
	UniformModel            = "model"
	UniformNormalMatrix     = "normalMatrix"
	UniformLightDirection   = "lightDirection"
	UniformAmbientColor     = "ambientColor"
	UniformDirectionalColor = "directionalColor"
	UniformFragColor        = "fragColor"
)

// ShaderDialect selects the header prepended to the sources.
type ShaderDialect uint8

const (
	// GLSLES100 is WebGL 1.
	GLSLES100 ShaderDialect = iota
	// GLSL120 is desktop OpenGL 2.1.
	GLSL120
)

func (d ShaderDialect) header() string {
	if d == GLSL120 {
		return "#version 120\n"
	}
	return ""
}

// ProgramSource is the vertex and fragment source of one program.
type ProgramSource struct {
	Kind     ProgramKind
	Vertex   string
	Fragment string
}

// Attributes lists the vertex attributes the program reads.
func (p ProgramSource) Attributes() []string {
	if p.Kind == LitProgram {
		return []string{AttribCoordinates, AttribNormal}
	}
	return []string{AttribCoordinates}
}

// Sources returns the program source for kind written in dialect.
func Sources(kind ProgramKind, dialect ShaderDialect) ProgramSource {
	vs, fs := flatVertexShader, flatFragmentShader
	if kind == LitProgram {
		vs, fs = litVertexShader, litFragmentShader
	}
	h := dialect.header()
	return ProgramSource{Kind: kind, Vertex: h + vs, Fragment: h + fs}
}

const fragmentPrecision = `
#ifdef GL_ES
precision mediump float;
#endif
`

const flatVertexShader = `
uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

attribute vec3 coordinates;

void main(void) {
	gl_Position = projection * view * model * vec4(coordinates, 1.0);
}
`

const flatFragmentShader = fragmentPrecision + `
uniform vec4 fragColor;

void main(void) {
	gl_FragColor = fragColor;
}
`

const litVertexShader = `
uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;
uniform mat3 normalMatrix;

uniform vec3 lightDirection;
uniform vec3 ambientColor;
uniform vec3 directionalColor;

attribute vec3 coordinates;
attribute vec3 normal;

varying vec3 lighting;

void main(void) {
	gl_Position = projection * view * model * vec4(coordinates, 1.0);

	vec3 n = normalize(normalMatrix * normal);
	float weight = max(dot(n, lightDirection), 0.0);
	lighting = ambientColor + directionalColor * weight;
}
`

const litFragmentShader = fragmentPrecision + `
uniform vec4 fragColor;

varying vec3 lighting;

void main(void) {
	gl_FragColor = vec4(fragColor.rgb * lighting, fragColor.a);
}
`
