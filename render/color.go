package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a straight-alpha RGBA colour with components in [0,1], the layout
// a vec4 uniform expects.
type Color struct {
	R, G, B, A float32
}

// DefaultColor is used when a routine is given no colour.
var DefaultColor = Color{1, 0, 0, 1}

// Slice returns c as a 4-element array for uniform4fv.
func (c Color) Slice() [4]float32 { return [4]float32{c.R, c.G, c.B, c.A} }

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	a = uint32(clamp01(c.A) * max)
	r = uint32(clamp01(c.R) * clamp01(c.A) * max)
	g = uint32(clamp01(c.G) * clamp01(c.A) * max)
	b = uint32(clamp01(c.B) * clamp01(c.A) * max)
	return r, g, b, a
}

// CSS formats c as a CSS rgba() string for a 2D canvas fillStyle.
func (c Color) CSS() string {
	to8 := func(v float32) int { return int(math.Round(float64(clamp01(v)) * 255)) }
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", to8(c.R), to8(c.G), to8(c.B), clamp01(c.A))
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	const max = 0xffff
	return Color{
		R: float32(nc.R) / max,
		G: float32(nc.G) / max,
		B: float32(nc.B) / max,
		A: float32(nc.A) / max,
	}
}

// ColorOrDefault dereferences c, falling back to DefaultColor.
func ColorOrDefault(c *Color) Color {
	if c == nil {
		return DefaultColor
	}
	return *c
}

// ColorFromFloats builds a Color from 3 or 4 components. Alpha defaults to 1.
func ColorFromFloats(v []float32) (Color, error) {
	switch len(v) {
	case 3:
		return Color{v[0], v[1], v[2], 1}, nil
	case 4:
		return Color{v[0], v[1], v[2], v[3]}, nil
	}
	return Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(v))
}

// ParseColor reads a colour as "r,g,b[,a]" floats, "#rrggbb[aa]" hex, or a
// CSS colour name such as "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.Contains(s, ","):
		fields := strings.Split(s, ",")
		v := make([]float32, len(fields))
		for i, f := range fields {
			x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return Color{}, fmt.Errorf("color component %d: %w", i, err)
			}
			v[i] = float32(x)
		}
		return ColorFromFloats(v)
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(named), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(h string) (Color, error) {
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("hex color %q must have 6 or 8 digits", h)
	}
	if len(h) == 6 {
		h += "ff"
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", h, err)
	}
	return Color{
		R: float32(n>>24&0xff) / 0xff,
		G: float32(n>>16&0xff) / 0xff,
		B: float32(n>>8&0xff) / 0xff,
		A: float32(n&0xff) / 0xff,
	}, nil
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
