package ui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestButtonFiresOnReleaseAnywhere(t *testing.T) {
	ctx := newTestCtx(t)
	r := Box{10, 10, 50, 20}
	var got []bool
	step := func() {
		frame(t, ctx, func() { got = append(got, ctx.ButtonAt("Go", r)) })
	}

	ctx.PointerMove(20, 20)
	ctx.PointerButton(true)
	step() // press inside
	if ctx.Active() != Hash("Go", 0) {
		t.Fatalf("Active after press = %v, want button", ctx.Active())
	}

	ctx.PointerMove(200, 200)
	step() // dragged outside, still down

	ctx.PointerButton(false)
	step() // released outside

	if diff := cmp.Diff([]bool{false, false, true}, got); diff != "" {
		t.Errorf("triggered mismatch (-want +got):\n%s", diff)
	}
	if ctx.Active() != 0 {
		t.Errorf("Active after release = %v, want 0", ctx.Active())
	}
}

func TestButtonColors(t *testing.T) {
	ctx := newTestCtx(t)
	st := ctx.Style()
	r := Box{0, 0, 40, 20}
	fill := func() RectCommand {
		cmds := frame(t, ctx, func() { ctx.ButtonAt("B", r) })
		return cmds[1].(RectCommand)
	}

	ctx.PointerMove(100, 100)
	if got := fill().Color; got != st.ButtonIdle {
		t.Errorf("idle fill = %v, want %v", got, st.ButtonIdle)
	}
	ctx.PointerMove(5, 5)
	if got := fill().Color; got != st.ButtonHot {
		t.Errorf("hot fill = %v, want %v", got, st.ButtonHot)
	}
	ctx.PointerButton(true)
	if got := fill().Color; got != st.ButtonActive {
		t.Errorf("active fill = %v, want %v", got, st.ButtonActive)
	}
}

func TestEdgesLastOneFrame(t *testing.T) {
	ctx := newTestCtx(t)
	ctx.PointerButton(true)
	ctx.PointerButton(false)

	ctx.FrameBegin()
	if !ctx.in.pressed || !ctx.in.released {
		t.Error("queued press and release should both be visible this frame")
	}
	_ = ctx.FrameEnd()

	ctx.FrameBegin()
	if ctx.in.pressed || ctx.in.released {
		t.Error("edges should clear after one frame")
	}
	_ = ctx.FrameEnd()
}

func TestHoverGoesToFrontContainer(t *testing.T) {
	ctx := newTestCtx(t)
	var clickedA, clickedB bool
	ui := func() {
		if ctx.WindowBegin("A", Box{0, 0, 200, 200}) {
			clickedA = ctx.Button("Go")
			ctx.WindowEnd()
		}
		if ctx.WindowBegin("B", Box{5, 0, 200, 200}) {
			clickedB = ctx.Button("Go")
			ctx.WindowEnd()
		}
	}
	frame(t, ctx, ui)

	// (15, 35) is on A's button at (10, 30) and on B's at (15, 30).
	ctx.PointerMove(15, 35)
	frame(t, ctx, ui)

	a, _ := ctx.Container("A")
	b, _ := ctx.Container("B")
	if ctx.HoverContainer() != b.ID {
		t.Fatalf("HoverContainer = %v, want B (%v)", ctx.HoverContainer(), b.ID)
	}
	if want := Hash("Go", b.ID); ctx.Hot() != want {
		t.Errorf("Hot = %v, want B's button %v", ctx.Hot(), want)
	}

	ctx.PointerButton(true)
	frame(t, ctx, ui)
	ctx.PointerButton(false)
	frame(t, ctx, ui)
	if clickedA || !clickedB {
		t.Errorf("clicked A=%v B=%v, want only B", clickedA, clickedB)
	}
	if ctx.Active() == Hash("Go", a.ID) {
		t.Error("A's button became active through B")
	}
}

func TestRootButtonBlockedByWindow(t *testing.T) {
	ctx := newTestCtx(t)
	var clicked bool
	ui := func() {
		clicked = ctx.ButtonAt("Under", Box{0, 0, 50, 50})
		if ctx.WindowBegin("Over", Box{0, 0, 100, 100}) {
			ctx.WindowEnd()
		}
	}
	frame(t, ctx, ui)
	ctx.PointerMove(10, 10)
	ctx.PointerButton(true)
	frame(t, ctx, ui)
	ctx.PointerButton(false)
	frame(t, ctx, ui)
	if clicked || ctx.Hot() == Hash("Under", 0) {
		t.Error("root button reacted under a window")
	}
}

func TestFocusRaisesZOrder(t *testing.T) {
	ctx := newTestCtx(t)
	ui := func() {
		for _, title := range []string{"A", "B"} {
			x := 0
			if title == "B" {
				x = 200
			}
			if ctx.WindowBegin(title, Box{x, 0, 100, 100}) {
				ctx.WindowEnd()
			}
		}
	}
	first := frame(t, ctx, ui)
	if r := first[0].(RectCommand); r.Area.X != 0 {
		t.Errorf("first drawn window at x=%d, want A at 0", r.Area.X)
	}

	ctx.PointerMove(5, 5)
	ctx.PointerButton(true)
	got := frame(t, ctx, ui)

	a, _ := ctx.Container("A")
	b, _ := ctx.Container("B")
	if a.ZIndex <= b.ZIndex {
		t.Errorf("A.ZIndex = %d, B.ZIndex = %d; want A in front", a.ZIndex, b.ZIndex)
	}
	if r := got[0].(RectCommand); r.Area.X != 200 {
		t.Errorf("first drawn window at x=%d, want B at 200", r.Area.X)
	}
	if r := got[b.CommandCount()].(RectCommand); r.Area.X != 0 {
		t.Errorf("second drawn window at x=%d, want A at 0", r.Area.X)
	}
}

func TestDrainMatchesProduced(t *testing.T) {
	ctx := newTestCtx(t)
	ui := func() {
		ctx.ButtonAt("root", Box{300, 300, 40, 20})
		if ctx.WindowBegin("A", Box{0, 0, 100, 100}) {
			ctx.Button("x")
			ctx.Label("hello")
			ctx.WindowEnd()
		}
		ctx.ButtonAt("root2", Box{300, 330, 40, 20})
		if ctx.WindowBegin("B", Box{120, 0, 100, 100}) {
			ctx.WindowEnd()
		}
	}
	got := frame(t, ctx, ui)

	a, _ := ctx.Container("A")
	b, _ := ctx.Container("B")
	root := 2 * 5
	if want := root + a.CommandCount() + b.CommandCount(); len(got) != want {
		t.Errorf("drained %d commands, want %d", len(got), want)
	}
	if len(got) != len(ctx.cmds) {
		t.Errorf("drained %d commands, produced %d", len(got), len(ctx.cmds))
	}
	if _, ok := ctx.NextCommand(); ok {
		t.Error("NextCommand after draining = true, want false")
	}
	// Root layer first, both root buttons before either window.
	for i := 0; i < root; i++ {
		if r, ok := got[i].(RectCommand); ok && r.Area.X < 300 {
			t.Fatalf("command %d = %+v belongs to a window", i, r)
		}
	}
}

func TestCommandOverflowFailsFrame(t *testing.T) {
	ctx := newTestCtx(t, func(c *Config) { c.MaxCommands = 4 })
	ctx.FrameBegin()
	if ctx.WindowBegin("W", Box{0, 0, 100, 100}) {
		ctx.Button("a")
		ctx.WindowEnd()
	}
	err := ctx.FrameEnd()
	if !errors.Is(err, ErrCommandOverflow) {
		t.Fatalf("FrameEnd = %v, want ErrCommandOverflow", err)
	}
	if _, ok := ctx.NextCommand(); ok {
		t.Error("overflowed frame should not yield a partial stream")
	}

	// The next frame starts clean.
	ctx.FrameBegin()
	ctx.PushScissor(Box{0, 0, 10, 10})
	ctx.PopScissor()
	if err := ctx.FrameEnd(); err != nil {
		t.Errorf("FrameEnd after recovery: %v", err)
	}
}

func TestStaleContainerDropsOut(t *testing.T) {
	ctx := newTestCtx(t)
	show := true
	ui := func() {
		if show && ctx.WindowBegin("Popup", Box{0, 0, 50, 50}) {
			ctx.WindowEnd()
		}
	}
	if got := frame(t, ctx, ui); len(got) == 0 {
		t.Fatal("first frame drew nothing")
	}
	show = false
	if got := frame(t, ctx, ui); len(got) != 0 {
		t.Errorf("hidden window still drew %d commands", len(got))
	}
	ctx.PointerMove(10, 10)
	frame(t, ctx, ui)
	if ctx.HoverContainer() != 0 {
		t.Errorf("HoverContainer = %v, want 0 for a hidden window", ctx.HoverContainer())
	}
}
