package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/text"
	"github.com/hubastard/nui/engine/ui"
)

type commandList []ui.Command

func (l *commandList) NextCommand() (ui.Command, bool) {
	if len(*l) == 0 {
		return nil, false
	}
	c := (*l)[0]
	*l = (*l)[1:]
	return c, true
}

func at(c *Canvas, x, y int) colors.Color {
	p := c.Image().RGBAAt(x, y)
	return colors.Color{R: p.R, G: p.G, B: p.B, A: p.A}
}

func TestRenderAppliesScissors(t *testing.T) {
	c := New(20, 20, text.Default())
	c.Clear(colors.Black)

	cmds := commandList{
		ui.ScissorCommand{Area: ui.Box{X: 0, Y: 0, W: 10, H: 10}},
		ui.RectCommand{Area: ui.Box{X: 5, Y: 5, W: 10, H: 10}, Color: colors.Red},
		ui.ScissorCommand{Area: ui.Box{X: -100, Y: -100, W: 1000, H: 1000}},
		ui.RectCommand{Area: ui.Box{X: 15, Y: 15, W: 5, H: 5}, Color: colors.Blue},
		ui.ScissorCommand{},
		ui.RectCommand{Area: ui.Box{X: 0, Y: 0, W: 20, H: 20}, Color: colors.Green},
		ui.TextCommand{Text: "x", X: 0, Y: 0, Color: colors.White},
	}
	c.Render(&cmds)

	tests := []struct {
		x, y int
		want colors.Color
	}{
		{7, 7, colors.Red},
		{12, 12, colors.Black}, // outside the first scissor
		{17, 17, colors.Blue},
		{0, 0, colors.Black}, // the empty scissor suppressed green and text
	}
	for _, tt := range tests {
		if got := at(c, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	want := Statistics{Rects: 2, Scissors: 3, Culled: 2}
	if diff := cmp.Diff(want, c.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderContext(t *testing.T) {
	face := text.Default()
	c := New(200, 120, face)
	ctx := ui.New(ui.DefaultConfig(), face)

	ctx.FrameBegin()
	if ctx.WindowBegin("Hello", ui.Box{X: 10, Y: 10, W: 150, H: 80}) {
		ctx.Button("Press")
		ctx.WindowEnd()
	}
	if err := ctx.FrameEnd(); err != nil {
		t.Fatalf("FrameEnd: %v", err)
	}
	c.Clear(colors.Black)
	c.Render(ctx)

	st := ctx.Style()
	if got := at(c, 100, 90); got != st.WindowBg {
		t.Errorf("window body pixel = %v, want %v", got, st.WindowBg)
	}
	if got := at(c, 5, 5); got != colors.Black {
		t.Errorf("background pixel = %v, want black", got)
	}
	if s := c.Stats(); s.Texts != 2 || s.Culled != 0 {
		t.Errorf("stats = %+v, want 2 texts and nothing culled", s)
	}
}

func TestSavePNG(t *testing.T) {
	c := New(4, 4, text.Default())
	c.Clear(colors.RGB(1, 2, 3))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("Stat = %v, %v", fi, err)
	}
}
