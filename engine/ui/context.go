package ui

import (
	"cmp"
	"fmt"
	"slices"
)

// Measurer reports the pixel size of a text string in the caller's font.
type Measurer interface {
	Measure(text string) (w, h int)
}

type MeasureFunc func(text string) (w, h int)

func (f MeasureFunc) Measure(text string) (w, h int) { return f(text) }

type input struct {
	x, y int
	down bool

	// Edges visible for exactly one frame.
	pressed, released bool

	pressedQueued, releasedQueued bool
}

// Ctx is the immediate-mode UI context. It is not safe for concurrent use.
type Ctx struct {
	cfg   Config
	style Style
	m     Measurer

	in             input
	hot, active    ID
	hoverContainer ID
	dragX, dragY   int

	// Fixed-capacity buffers reused every frame.
	cmds      []Command
	rootSpans []span
	clip      Box
	clips     []Box
	layouts   []layoutFrame

	containers []Container
	current    *Container
	zCounter   int

	order             []*Container
	drain             []span
	iterSpan, iterPos int

	frame uint64
	err   error
}

// New builds a context. m measures every label the engine lays out.
func New(cfg Config, m Measurer) *Ctx {
	if m == nil {
		panic("ui: nil Measurer")
	}
	cfg = cfg.withDefaults()
	return &Ctx{
		cfg:        cfg,
		style:      cfg.Style,
		m:          m,
		cmds:       make([]Command, 0, cfg.MaxCommands),
		clip:       rootBox,
		clips:      make([]Box, 0, cfg.MaxScissorDepth),
		layouts:    make([]layoutFrame, 0, cfg.MaxLayoutDepth),
		containers: make([]Container, 0, cfg.MaxContainers),
		order:      make([]*Container, 0, cfg.MaxContainers),
	}
}

func (ctx *Ctx) Style() Style       { return ctx.style }
func (ctx *Ctx) SetStyle(s Style)   { ctx.style = s }
func (ctx *Ctx) Hot() ID            { return ctx.hot }
func (ctx *Ctx) Active() ID         { return ctx.active }
func (ctx *Ctx) HoverContainer() ID { return ctx.hoverContainer }
func (ctx *Ctx) Frame() uint64      { return ctx.frame }

// CommandCount is the number of commands emitted so far this frame.
func (ctx *Ctx) CommandCount() int { return len(ctx.cmds) }

// Err returns the error that failed the current frame, if any.
func (ctx *Ctx) Err() error { return ctx.err }

// ===== Input =====

func (ctx *Ctx) PointerMove(x, y int) {
	ctx.in.x, ctx.in.y = x, y
}

// PointerButton queues a button edge; it becomes visible at the next
// FrameBegin.
func (ctx *Ctx) PointerButton(down bool) {
	ctx.in.down = down
	if down {
		ctx.in.pressedQueued = true
	} else {
		ctx.in.releasedQueued = true
	}
}

// ===== Frame =====

func (ctx *Ctx) FrameBegin() {
	ctx.frame++
	in := &ctx.in
	in.pressed, in.released = in.pressedQueued, in.releasedQueued
	in.pressedQueued, in.releasedQueued = false, false

	ctx.err = nil
	ctx.cmds = ctx.cmds[:0]
	ctx.rootSpans = ctx.rootSpans[:0]
	ctx.drain = ctx.drain[:0]
	ctx.iterSpan, ctx.iterPos = 0, 0
	ctx.hot = 0

	ctx.clip = rootBox
	ctx.clips = ctx.clips[:0]
	ctx.layouts = ctx.layouts[:0]
	ctx.current = nil

	// Uses last frame's command counts, so it must run before they are
	// cleared.
	ctx.hoverContainer = ctx.resolveHover()
	for i := range ctx.containers {
		ctx.containers[i].commandCount = 0
	}
}

// FrameEnd closes the frame and prepares the z-ordered command stream. A
// frame that failed yields no commands and its error is returned here.
func (ctx *Ctx) FrameEnd() error {
	if ctx.in.released {
		ctx.active = 0
	}
	if ctx.current != nil {
		ctx.fail(fmt.Errorf("%w: window %v still open", ErrUnbalanced, ctx.current.ID))
		ctx.current = nil
	} else if len(ctx.clips) > 0 || len(ctx.layouts) > 0 {
		ctx.fail(fmt.Errorf("%w: %d scissors, %d layouts", ErrUnbalanced, len(ctx.clips), len(ctx.layouts)))
	}

	ctx.order = ctx.order[:0]
	ctx.drain = ctx.drain[:0]
	ctx.iterSpan, ctx.iterPos = 0, 0
	if ctx.err != nil {
		return fmt.Errorf("ui: frame %d: %w", ctx.frame, ctx.err)
	}

	for i := range ctx.containers {
		if c := &ctx.containers[i]; c.commandCount > 0 {
			ctx.order = append(ctx.order, c)
		}
	}
	slices.SortStableFunc(ctx.order, func(a, b *Container) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})

	ctx.drain = append(ctx.drain, ctx.rootSpans...)
	for _, c := range ctx.order {
		ctx.drain = append(ctx.drain, span{start: c.commandStart, count: c.commandCount})
	}
	return nil
}

// fail records the first error of the frame.
func (ctx *Ctx) fail(err error) {
	if ctx.err != nil {
		return
	}
	ctx.err = err
	ctx.cfg.Logger.Error("ui frame failed", "frame", ctx.frame, "err", err)
}

func (ctx *Ctx) measure(text string) (w, h int) {
	if text == "" {
		return 0, 0
	}
	return ctx.m.Measure(text)
}
