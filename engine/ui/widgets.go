package ui

import "fmt"

// Button lays out a button in the open window and reports whether it was
// clicked this frame.
func (ctx *Ctx) Button(label string) bool {
	c := ctx.current
	if c == nil {
		ctx.fail(fmt.Errorf("%w: button %q", ErrNoContainer, label))
		return false
	}
	tw, th := ctx.measure(label)
	b := ctx.Allocate(tw+2*ctx.style.PaddingX, th+2*ctx.style.PaddingY)
	return ctx.button(Hash(label, c.ID), label, b, c.ID)
}

// ButtonAt places a button at b. Outside of a window it is drawn on the
// root layer, beneath every window.
func (ctx *Ctx) ButtonAt(label string, b Box) bool {
	var owner ID
	if ctx.current != nil {
		owner = ctx.current.ID
	}
	return ctx.button(Hash(label, owner), label, b, owner)
}

// Label lays out a line of text in the innermost layout.
func (ctx *Ctx) Label(text string) {
	st := &ctx.style
	tw, th := ctx.measure(text)
	b := ctx.Allocate(tw+2*st.PaddingX, th+2*st.PaddingY)
	if ctx.err != nil {
		return
	}
	ctx.emit(TextCommand{Text: text, X: b.X + st.PaddingX, Y: b.Y + st.PaddingY, Color: st.Text})
}

func (ctx *Ctx) button(id ID, label string, b Box, owner ID) bool {
	clicked := ctx.interact(id, b, owner)

	st := &ctx.style
	fill := st.ButtonIdle
	switch id {
	case ctx.active:
		fill = st.ButtonActive
	case ctx.hot:
		fill = st.ButtonHot
	}
	ctx.emit(RectCommand{Area: b, Color: st.Border})
	ctx.emit(RectCommand{Area: b.Inset(st.BorderSize), Color: fill})

	ctx.PushScissor(b)
	tw, th := ctx.measure(label)
	ctx.emit(TextCommand{Text: label, X: b.X + (b.W-tw)/2, Y: b.Y + (b.H-th)/2, Color: st.Text})
	ctx.PopScissor()
	return clicked
}

// interact updates hot/active for a widget and reports a click. A click is
// any release while the widget is active, wherever the pointer is.
func (ctx *Ctx) interact(id ID, b Box, owner ID) bool {
	if ctx.hovered(b, owner) && (ctx.active == 0 || ctx.active == id) {
		ctx.hot = id
		if ctx.in.pressed {
			ctx.active = id
		}
	}
	return ctx.in.released && ctx.active == id
}

// hovered reports whether the pointer is over b, inside the current clip,
// and owner is the front-most container under the pointer (0 for the root
// layer, meaning no window is under it).
func (ctx *Ctx) hovered(b Box, owner ID) bool {
	x, y := ctx.in.x, ctx.in.y
	return ctx.hoverContainer == owner && b.Contains(x, y) && ctx.clip.Contains(x, y)
}
