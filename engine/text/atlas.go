package text

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas packs the glyphs of a Face into one white-on-transparent RGBA image
// for GPU text. It also holds a solid white block so untextured quads can
// sample the same texture. It implements ui.Measurer.
type Atlas struct {
	Ascent, Descent int
	LineHeight      int
	Glyphs          map[rune]Glyph
	Image           *image.RGBA
	WhiteU, WhiteV  float32 // UV inside the solid block

	face font.Face
}

const (
	atlasPadding = 2
	whiteSize    = 2
	maxAtlasSize = 4096
)

// NewAtlas rasterizes runes 32..255 of f.
func NewAtlas(f *Face) (*Atlas, error) {
	face := f.face

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var measure []meas
	for r := rune(32); r <= 255; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r: r,
			w: br.Max.X.Ceil() - br.Min.X.Floor(), h: br.Max.Y.Ceil() - br.Min.Y.Floor(),
			adv: fix(adv),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()), // distance from baseline to top
		})
	}

	// Very simple shelf packer (rows). Start small and grow until everything
	// fits. The white block sits in the top-left corner.
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := whiteSize+atlasPadding, atlasPadding, whiteSize
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if x+g.w+atlasPadding > atlasSize || y+g.h+atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > maxAtlasSize {
			return nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, image.Rect(0, 0, whiteSize, whiteSize), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	size := float32(atlasSize)
	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		out := Glyph{Advance: g.adv, BearingX: g.bx, BearingY: g.by}
		if p, ok := pos[g.r]; ok {
			// Drawer expects a dot at the baseline; shift left by the bearing.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			out.W, out.H = g.w, g.h
			out.U0, out.V0 = float32(p.X)/size, float32(p.Y)/size
			out.U1, out.V1 = float32(p.X+g.w)/size, float32(p.Y+g.h)/size
		}
		glyphs[g.r] = out
	}
	whiten(dst)

	return &Atlas{
		Ascent:     f.Ascent,
		Descent:    f.Descent,
		LineHeight: f.LineHeight,
		Glyphs:     glyphs,
		Image:      dst,
		WhiteU:     float32(whiteSize) / 2 / size,
		WhiteV:     float32(whiteSize) / 2 / size,
		face:       face,
	}, nil
}

// whiten turns premultiplied coverage into white with straight alpha.
func whiten(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] != 0 {
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0xFF, 0xFF, 0xFF
		}
	}
}

// Kern returns the kerning adjustment between prev and r in pixels.
func (a *Atlas) Kern(prev, r rune) float32 { return fix(a.face.Kern(prev, r)) }

// Glyph returns r's glyph, falling back to the space glyph's advance for
// runes outside the atlas.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	sp := a.Glyphs[' ']
	return Glyph{Advance: sp.Advance}, false
}

// Measure sums glyph advances plus kerning per line; '\n' starts a new line.
func (a *Atlas) Measure(s string) (w, h int) {
	if s == "" {
		return 0, 0
	}
	var lineW, maxW float32
	prev, lines := rune(-1), 1
	for _, r := range s {
		if r == '\n' {
			maxW = max(maxW, lineW)
			lineW, prev = 0, -1
			lines++
			continue
		}
		if prev >= 0 {
			lineW += a.Kern(prev, r)
		}
		g, _ := a.Glyph(r)
		lineW += g.Advance
		prev = r
	}
	maxW = max(maxW, lineW)
	return int(math.Ceil(float64(maxW))), lines * a.LineHeight
}

func fix(v fixed.Int26_6) float32 { return float32(v) / 64 }
