package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight-alpha 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Black       = Color{0x00, 0x00, 0x00, 0xFF}
	Red         = Color{0xFF, 0x00, 0x00, 0xFF}
	Green       = Color{0x00, 0xFF, 0x00, 0xFF}
	Blue        = Color{0x00, 0x00, 0xFF, 0xFF}
	Yellow      = Color{0xFF, 0xFF, 0x00, 0xFF}
	Gray        = Color{0x80, 0x80, 0x80, 0xFF}
	DarkGray    = Color{0x14, 0x1A, 0x1F, 0xFF}
	Transparent = Color{}
)

func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xFF} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Floats returns the color as normalized [0..1] components.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("colors: %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
