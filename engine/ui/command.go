package ui

import (
	"iter"

	"github.com/hubastard/nui/engine/colors"
)

// Command is one draw operation. It is one of RectCommand, TextCommand or
// ScissorCommand.
type Command interface{ isCommand() }

type RectCommand struct {
	Area  Box
	Color colors.Color
}

func (RectCommand) isCommand() {}

// TextCommand draws Text with its top-left corner at (X, Y).
type TextCommand struct {
	Text  string
	X, Y  int
	Color colors.Color
}

func (TextCommand) isCommand() {}

// ScissorCommand replaces the active clip rectangle. Renderers must apply
// them in stream order.
type ScissorCommand struct {
	Area Box
}

func (ScissorCommand) isCommand() {}

// CommandSource is drained by renderers once per frame.
type CommandSource interface {
	NextCommand() (Command, bool)
}

// span is a contiguous run of the frame's command buffer.
type span struct {
	start, count int
}

func (s span) end() int { return s.start + s.count }

// emit appends c to the frame's buffer and attributes it to the open window,
// or to the root layer when none is open.
func (ctx *Ctx) emit(c Command) {
	if ctx.err != nil {
		return
	}
	if len(ctx.cmds) == ctx.cfg.MaxCommands {
		ctx.fail(ErrCommandOverflow)
		return
	}
	if ctx.current == nil {
		if n := len(ctx.rootSpans); n > 0 && ctx.rootSpans[n-1].end() == len(ctx.cmds) {
			ctx.rootSpans[n-1].count++
		} else {
			ctx.rootSpans = append(ctx.rootSpans, span{start: len(ctx.cmds), count: 1})
		}
	}
	ctx.cmds = append(ctx.cmds, c)
}

// NextCommand yields the frame's commands: the root layer first, then every
// window from back to front. It reports false once the frame is drained;
// only the next FrameEnd rewinds it.
func (ctx *Ctx) NextCommand() (Command, bool) {
	for ctx.iterSpan < len(ctx.drain) {
		s := ctx.drain[ctx.iterSpan]
		if ctx.iterPos < s.count {
			c := ctx.cmds[s.start+ctx.iterPos]
			ctx.iterPos++
			return c, true
		}
		ctx.iterSpan++
		ctx.iterPos = 0
	}
	return nil, false
}

// Commands is NextCommand as a range-over-func sequence. It shares the same
// cursor, so ranging twice in one frame yields nothing the second time.
func (ctx *Ctx) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for {
			c, ok := ctx.NextCommand()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
