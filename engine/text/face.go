package text

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/nui/engine/ui"
)

// Face measures and draws text with an x/image font face. It implements
// ui.Measurer.
type Face struct {
	face font.Face

	Ascent, Descent int // pixels above and below the baseline
	LineHeight      int
}

func NewFace(face font.Face) *Face {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	lineH := m.Height.Ceil()
	if lineH < ascent+descent {
		lineH = ascent + descent
	}
	return &Face{face: face, Ascent: ascent, Descent: descent, LineHeight: lineH}
}

// Default is the built-in 7x13 bitmap face.
func Default() *Face { return NewFace(basicfont.Face7x13) }

// LoadTTF parses a TrueType/OpenType file at the given pixel size.
func LoadTTF(path string, sizePx float64) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return NewFace(face), nil
}

func (f *Face) Close() error { return f.face.Close() }

// FitLineHeight raises s.LineHeight to the face's line height, so title bars
// and rows sized from the style hold a full line of this face.
func (f *Face) FitLineHeight(s *ui.Style) { s.LineHeight = max(s.LineHeight, f.LineHeight) }

// Measure returns the size of s in pixels; '\n' starts a new line.
func (f *Face) Measure(s string) (w, h int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		w = max(w, font.MeasureString(f.face, line).Ceil())
	}
	return w, len(lines) * f.LineHeight
}

// Draw renders s with its top-left corner at (x, y). Output is clipped to
// dst's bounds, so callers clip by passing a sub-image.
func (f *Face) Draw(dst draw.Image, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
	}
	baseline := y + f.Ascent
	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(x, baseline)
		d.DrawString(line)
		baseline += f.LineHeight
	}
}
