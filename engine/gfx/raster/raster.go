// Package raster draws a ui command stream into an in-memory RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/text"
	"github.com/hubastard/nui/engine/ui"
)

// Statistics counts what the last Render drew.
type Statistics struct {
	Rects    int
	Texts    int
	Scissors int
	Culled   int // rect and text commands entirely outside the clip
}

type Canvas struct {
	img   *image.RGBA
	face  *text.Face
	clip  image.Rectangle
	stats Statistics
}

func New(w, h int, face *text.Face) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), face: face}
}

func (c *Canvas) Image() *image.RGBA { return c.img }
func (c *Canvas) Stats() Statistics  { return c.stats }
func (c *Canvas) Size() (w, h int)   { return c.img.Rect.Dx(), c.img.Rect.Dy() }

// Measure implements ui.Measurer with the canvas face.
func (c *Canvas) Measure(s string) (w, h int) { return c.face.Measure(s) }

// Shutdown has nothing to release; it lets a Canvas serve as a headless
// core.Renderer.
func (c *Canvas) Shutdown() {}

// Resize reallocates the image when the size changed.
func (c *Canvas) Resize(w, h int) {
	if cw, ch := c.Size(); cw == w && ch == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (c *Canvas) Clear(col colors.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Render drains src, applying scissor commands in order.
func (c *Canvas) Render(src ui.CommandSource) {
	c.stats = Statistics{}
	c.clip = c.img.Rect
	for {
		cmd, ok := src.NextCommand()
		if !ok {
			return
		}
		switch cmd := cmd.(type) {
		case ui.RectCommand:
			r := toRect(cmd.Area).Intersect(c.clip)
			if r.Empty() {
				c.stats.Culled++
				continue
			}
			draw.Draw(c.img, r, image.NewUniform(cmd.Color), image.Point{}, draw.Over)
			c.stats.Rects++
		case ui.TextCommand:
			if c.clip.Empty() {
				c.stats.Culled++
				continue
			}
			dst := c.img.SubImage(c.clip).(*image.RGBA)
			c.face.Draw(dst, cmd.X, cmd.Y, cmd.Text, cmd.Color)
			c.stats.Texts++
		case ui.ScissorCommand:
			c.clip = toRect(cmd.Area).Intersect(c.img.Rect)
			c.stats.Scissors++
		}
	}
}

// SavePNG writes the current image to path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png %q: %w", path, err)
	}
	return f.Close()
}

func toRect(b ui.Box) image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}
