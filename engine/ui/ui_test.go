package ui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hubastard/nui/engine/colors"
)

// fixedMeasurer measures 8px per byte and 10px per line.
var fixedMeasurer = MeasureFunc(func(text string) (int, int) {
	return 8 * len(text), 10
})

func testStyle() Style {
	s := DefaultStyle()
	s.PaddingX = 5
	s.PaddingY = 5
	s.Margin = 10
	s.LineHeight = 10
	s.BorderSize = 1
	return s
}

func newTestCtx(t *testing.T, mut ...func(*Config)) *Ctx {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Style = testStyle()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, m := range mut {
		m(&cfg)
	}
	return New(cfg, fixedMeasurer)
}

func drain(ctx *Ctx) []Command {
	var out []Command
	for c := range ctx.Commands() {
		out = append(out, c)
	}
	return out
}

// frame runs one FrameBegin/FrameEnd cycle around ui and fails the test on
// a frame error.
func frame(t *testing.T, ctx *Ctx, ui func()) []Command {
	t.Helper()
	ctx.FrameBegin()
	ui()
	if err := ctx.FrameEnd(); err != nil {
		t.Fatalf("FrameEnd: %v", err)
	}
	return drain(ctx)
}

func rectAt(x, y, w, h int, c colors.Color) RectCommand {
	return RectCommand{Area: Box{X: x, Y: y, W: w, H: h}, Color: c}
}

func scissorAt(x, y, w, h int) ScissorCommand {
	return ScissorCommand{Area: Box{X: x, Y: y, W: w, H: h}}
}
