// Package demo is the UI shown by the sandbox, termdemo and snapshot
// programs.
package demo

import (
	"fmt"

	"github.com/hubastard/nui/engine/core"
	"github.com/hubastard/nui/engine/ui"
)

// Window titles.
const (
	Controls = "Controls"
	Notes    = "Notes"
)

// Layer declares two overlapping windows and a root-level toggle. Unit
// scales its geometry: pixels per unit on a desktop, 1 on a terminal.
type Layer struct {
	Unit int

	Clicks    int
	HideNotes bool
}

func (l *Layer) OnAttach(e *core.Engine)             {}
func (l *Layer) OnDetach(e *core.Engine)             {}
func (l *Layer) OnUpdate(e *core.Engine, dt float64) {}

func (l *Layer) OnUI(e *core.Engine) {
	u := max(l.Unit, 1)
	ctx := e.UI

	if ctx.ButtonAt(l.toggleLabel(), ui.Box{X: 2 * u, Y: 30 * u, W: 16 * u, H: 3 * u}) {
		l.HideNotes = !l.HideNotes
	}

	if ctx.WindowBegin(Controls, ui.Box{X: 2 * u, Y: 2 * u, W: 34 * u, H: 14 * u}) {
		ctx.Label(fmt.Sprintf("Clicks: %d", l.Clicks))
		ctx.BeginRow()
		if ctx.Button("Add") {
			l.Clicks++
		}
		if ctx.Button("Reset") {
			l.Clicks = 0
		}
		ctx.EndRow()
		if ctx.Button("Quit") {
			e.RequestClose()
		}
		ctx.WindowEnd()
	}

	if l.HideNotes {
		return
	}
	if ctx.WindowBegin(Notes, ui.Box{X: 22 * u, Y: 10 * u, W: 34 * u, H: 12 * u}) {
		ctx.Label("Drag a title bar to move.")
		ctx.Label("Click a window to raise it.")
		ctx.WindowEnd()
	}
}

func (l *Layer) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && (k.Key == core.KeyEscape || k.Key == core.KeyQ) {
		e.RequestClose()
		return true
	}
	return false
}

func (l *Layer) toggleLabel() string {
	if l.HideNotes {
		return "Show notes"
	}
	return "Hide notes"
}
