package core

import "github.com/hubastard/nui/engine/ui"

type Input struct {
	keys           map[Key]bool
	mouseX, mouseY float64
	buttons        [3]bool
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return int(b) < len(in.buttons) && in.buttons[b] }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }

// Feed forwards pointer events to the UI context. Only the left button
// drives UI interaction.
func Feed(ctx *ui.Ctx, ev Event) {
	switch e := ev.(type) {
	case EventMouseMove:
		ctx.PointerMove(int(e.X), int(e.Y))
	case EventMouseButton:
		if e.Button == MouseLeft {
			ctx.PointerButton(e.Down)
		}
	}
}
