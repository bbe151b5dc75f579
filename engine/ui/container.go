package ui

// Container is the retained state of one window.
type Container struct {
	ID     ID
	Area   Box
	ZIndex int

	commandStart int
	commandCount int
	seeded       bool
}

// CommandCount is the number of commands the container produced this frame.
func (c Container) CommandCount() int { return c.commandCount }

// Container returns a copy of the state of the window with the given title.
func (ctx *Ctx) Container(title string) (Container, bool) {
	if c := ctx.lookup(Hash(title, 0)); c != nil {
		return *c, true
	}
	return Container{}, false
}

func (ctx *Ctx) lookup(id ID) *Container {
	for i := range ctx.containers {
		if ctx.containers[i].ID == id {
			return &ctx.containers[i]
		}
	}
	return nil
}

// getOrCreate never reallocates the registry, so returned pointers stay
// valid for the life of the context.
func (ctx *Ctx) getOrCreate(id ID) *Container {
	if c := ctx.lookup(id); c != nil {
		return c
	}
	if len(ctx.containers) == cap(ctx.containers) {
		ctx.fail(ErrContainerOverflow)
		return nil
	}
	ctx.containers = append(ctx.containers, Container{ID: id})
	c := &ctx.containers[len(ctx.containers)-1]
	ctx.bringToFront(c)
	ctx.cfg.Logger.Debug("ui container created", "id", id, "z", c.ZIndex)
	return c
}

func (ctx *Ctx) bringToFront(c *Container) {
	ctx.zCounter++
	c.ZIndex = ctx.zCounter
}

// resolveHover picks the front-most container that drew last frame and lies
// under the pointer.
func (ctx *Ctx) resolveHover() ID {
	var top *Container
	for i := range ctx.containers {
		c := &ctx.containers[i]
		if c.commandCount == 0 || !c.Area.Contains(ctx.in.x, ctx.in.y) {
			continue
		}
		if top == nil || c.ZIndex > top.ZIndex {
			top = c
		}
	}
	if top == nil {
		return 0
	}
	return top.ID
}
