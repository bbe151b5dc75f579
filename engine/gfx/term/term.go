// Package term draws a ui command stream onto a tcell screen, one cell per
// ui pixel.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/ui"
)

// Style returns ui metrics that suit a character grid: one-cell padding and
// margins and a one-row line height.
func Style() ui.Style {
	s := ui.DefaultStyle()
	s.BorderSize = 0
	s.PaddingX = 1
	s.PaddingY = 0
	s.Margin = 1
	s.LineHeight = 1
	return s
}

type Renderer struct {
	screen tcell.Screen
	clip   ui.Box
	bg     tcell.Color
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, bg: tcell.ColorDefault}
}

// Measure implements ui.Measurer in cells.
func (r *Renderer) Measure(s string) (w, h int) { return runewidth.StringWidth(s), 1 }

func (r *Renderer) Resize(w, h int) {}
func (r *Renderer) Shutdown()       {}

func (r *Renderer) Clear(c colors.Color) {
	r.bg = color(c)
	r.screen.SetStyle(tcell.StyleDefault.Background(r.bg))
	r.screen.Clear()
}

// Render drains src onto the screen. Presenting the screen is left to the
// window's SwapBuffers.
func (r *Renderer) Render(src ui.CommandSource) {
	w, h := r.screen.Size()
	screen := ui.Box{W: w, H: h}
	r.clip = screen
	for {
		cmd, ok := src.NextCommand()
		if !ok {
			return
		}
		switch cmd := cmd.(type) {
		case ui.RectCommand:
			r.fill(cmd.Area.Intersect(r.clip), cmd.Color)
		case ui.TextCommand:
			r.text(cmd)
		case ui.ScissorCommand:
			r.clip = cmd.Area.Intersect(screen)
		}
	}
}

func (r *Renderer) fill(b ui.Box, c colors.Color) {
	if b.Empty() || c.A == 0 {
		return
	}
	st := tcell.StyleDefault.Background(color(c))
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// text keeps the background of the cells it writes over.
func (r *Renderer) text(cmd ui.TextCommand) {
	fg := color(cmd.Color)
	x := cmd.X
	for _, ch := range cmd.Text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if r.clip.Contains(x, cmd.Y) && r.clip.Contains(x+cw-1, cmd.Y) {
			_, _, st, _ := r.screen.GetContent(x, cmd.Y)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(x, cmd.Y, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		x += cw
	}
}

func color(c colors.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
