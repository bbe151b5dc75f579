package ui

// Clip returns the clip rectangle currently in effect.
func (ctx *Ctx) Clip() Box { return ctx.clip }

// PushScissor narrows the clip to its intersection with area and emits the
// new clip.
func (ctx *Ctx) PushScissor(area Box) {
	if len(ctx.clips) == ctx.cfg.MaxScissorDepth {
		ctx.fail(ErrScissorOverflow)
		return
	}
	ctx.clips = append(ctx.clips, ctx.clip)
	ctx.clip = ctx.clip.Intersect(area)
	ctx.emit(ScissorCommand{Area: ctx.clip})
}

// PopScissor restores the clip saved by the matching PushScissor and emits
// it.
func (ctx *Ctx) PopScissor() {
	n := len(ctx.clips)
	if n == 0 {
		ctx.fail(ErrScissorUnderflow)
		return
	}
	ctx.clip = ctx.clips[n-1]
	ctx.clips = ctx.clips[:n-1]
	ctx.emit(ScissorCommand{Area: ctx.clip})
}
