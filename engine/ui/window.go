package ui

import "fmt"

func (ctx *Ctx) titleHeight() int {
	return 2*ctx.style.PaddingY + ctx.style.LineHeight
}

// WindowBegin opens the window called title. area only places the window
// the first time the title is seen; afterwards the window keeps its own
// area and moves only by dragging its title bar.
//
// It returns false when the window is entirely clipped. In that case nothing
// was drawn and the caller must skip the window's body and WindowEnd.
func (ctx *Ctx) WindowBegin(title string, area Box) bool {
	if ctx.current != nil {
		ctx.fail(fmt.Errorf("%w: %q inside %v", ErrWindowNested, title, ctx.current.ID))
		return false
	}
	c := ctx.getOrCreate(Hash(title, 0))
	if c == nil {
		return false
	}

	st := &ctx.style
	titleH := ctx.titleHeight()
	if !c.seeded {
		c.Area = Box{X: area.X, Y: area.Y, W: area.W, H: area.H + titleH}
		c.seeded = true
	}

	ctx.dragTitle(c, Box{X: c.Area.X, Y: c.Area.Y, W: c.Area.W, H: titleH})

	bar := Box{X: c.Area.X, Y: c.Area.Y, W: c.Area.W, H: titleH}
	body := Box{X: c.Area.X, Y: c.Area.Y + titleH, W: c.Area.W, H: c.Area.H - titleH}
	content := body.Inset(st.Margin)
	if !content.Overlaps(ctx.clip) {
		return false
	}

	c.commandStart = len(ctx.cmds)
	ctx.current = c

	ctx.emit(RectCommand{Area: bar, Color: st.TitleBg})
	ctx.PushScissor(bar)
	_, th := ctx.measure(title)
	ctx.emit(TextCommand{Text: title, X: bar.X + st.PaddingX, Y: bar.Y + (bar.H-th)/2, Color: st.Text})
	ctx.PopScissor()
	ctx.emit(RectCommand{Area: body, Color: st.WindowBg})

	ctx.PushScissor(content)
	ctx.PushLayout(content, FlowVertical)
	return true
}

// WindowEnd closes the window opened by a successful WindowBegin.
func (ctx *Ctx) WindowEnd() {
	c := ctx.current
	if c == nil {
		ctx.fail(ErrWindowNotOpen)
		return
	}
	ctx.PopScissor()
	ctx.PopLayout()
	c.commandCount = len(ctx.cmds) - c.commandStart
	ctx.current = nil
}

// dragTitle runs the title bar's press/drag/release cycle. The release that
// ends a drag is handled by FrameEnd.
func (ctx *Ctx) dragTitle(c *Container, bar Box) {
	id := Hash("#title", c.ID)
	if ctx.hovered(bar, c.ID) && (ctx.active == 0 || ctx.active == id) {
		ctx.hot = id
		if ctx.in.pressed && ctx.active != id {
			ctx.active = id
			ctx.dragX, ctx.dragY = ctx.in.x-c.Area.X, ctx.in.y-c.Area.Y
			ctx.bringToFront(c)
			ctx.cfg.Logger.Debug("ui container focused", "id", c.ID, "z", c.ZIndex)
		}
	}
	if ctx.active == id && ctx.in.down {
		c.Area.X = ctx.in.x - ctx.dragX
		c.Area.Y = ctx.in.y - ctx.dragY
	}
}
