package ui

// Flow is the direction a layout hands out space in.
type Flow uint8

const (
	FlowVertical Flow = iota
	FlowHorizontal
)

type layoutFrame struct {
	area             Box
	cursorX, cursorY int
	sizeX, sizeY     int // extent reached, relative to area's origin
	rowH             int
	flow             Flow
	margin           int
}

// PushLayout starts a nested layout whose cursor begins at area's origin.
func (ctx *Ctx) PushLayout(area Box, flow Flow) {
	if len(ctx.layouts) == ctx.cfg.MaxLayoutDepth {
		ctx.fail(ErrLayoutOverflow)
		return
	}
	ctx.layouts = append(ctx.layouts, layoutFrame{
		area:    area,
		cursorX: area.X,
		cursorY: area.Y,
		flow:    flow,
		margin:  ctx.style.Margin,
	})
}

// PopLayout closes the innermost layout and allocates everything it
// consumed as one item in its parent.
func (ctx *Ctx) PopLayout() {
	n := len(ctx.layouts)
	if n == 0 {
		ctx.fail(ErrLayoutUnderflow)
		return
	}
	child := ctx.layouts[n-1]
	ctx.layouts = ctx.layouts[:n-1]
	if n > 1 {
		ctx.Allocate(child.sizeX, child.sizeY)
	}
}

// Allocate hands out the next w x h box of the innermost layout.
func (ctx *Ctx) Allocate(w, h int) Box {
	n := len(ctx.layouts)
	if n == 0 {
		ctx.fail(ErrNoContainer)
		return Box{}
	}
	l := &ctx.layouts[n-1]

	if l.flow == FlowHorizontal && l.cursorX > l.area.X && l.cursorX+w > l.area.X+l.area.W {
		l.cursorX = l.area.X
		l.cursorY += l.rowH + l.margin
		l.rowH = 0
	}

	b := Box{X: l.cursorX, Y: l.cursorY, W: w, H: h}
	switch l.flow {
	case FlowHorizontal:
		l.cursorX += w + l.margin
		l.rowH = max(l.rowH, h)
	default:
		l.cursorY += h + l.margin
	}
	l.sizeX = max(l.sizeX, b.X+b.W-l.area.X)
	l.sizeY = max(l.sizeY, b.Y+b.H-l.area.Y)
	return b
}

// BeginRow opens a horizontal layout at the current cursor that spans the
// rest of the enclosing layout. Close it with EndRow.
func (ctx *Ctx) BeginRow() {
	n := len(ctx.layouts)
	if n == 0 {
		ctx.fail(ErrNoContainer)
		return
	}
	p := ctx.layouts[n-1]
	ctx.PushLayout(Box{
		X: p.cursorX,
		Y: p.cursorY,
		W: p.area.X + p.area.W - p.cursorX,
		H: p.area.Y + p.area.H - p.cursorY,
	}, FlowHorizontal)
}

func (ctx *Ctx) EndRow() { ctx.PopLayout() }
