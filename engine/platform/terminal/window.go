// Package terminal implements core.Window on a text terminal through tcell.
package terminal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hubastard/nui/engine/core"
)

// frameWait bounds how long PollEvents blocks waiting for input; it paces
// the main loop since a terminal has no vsync.
const frameWait = time.Second / 60

// Window implements core.Window on a terminal. One cell is one pixel.
type Window struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	title   string
	onEv    func(core.Event)
	buttons tcell.ButtonMask
	mx, my  int
	closed  bool
}

// New takes over the terminal. A nil screen opens the process's
// terminal; tests pass a tcell.SimulationScreen.
func New(screen tcell.Screen) (*Window, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	tw := &Window{screen: screen, events: make(chan tcell.Event, 64), quit: make(chan struct{}), mx: -1, my: -1}
	go tw.pump()
	w, h := screen.Size()
	slog.Info("terminal window created", "cols", w, "rows", h)
	return tw, nil
}

// pump forwards terminal events until the screen is finalized.
func (t *Window) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *Window) Screen() tcell.Screen { return t.screen }

// Destroy restores the terminal.
func (t *Window) Destroy() {
	close(t.quit)
	t.screen.Fini()
}

// PollEvents waits up to one frame for the first event and then drains
// whatever else is queued.
func (t *Window) PollEvents() {
	timer := time.NewTimer(frameWait)
	defer timer.Stop()
	select {
	case ev, ok := <-t.events:
		if !ok {
			t.closed = true
			return
		}
		t.translate(ev)
	case <-timer.C:
		return
	}
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closed = true
				return
			}
			t.translate(ev)
		default:
			return
		}
	}
}

func (t *Window) SwapBuffers()                         { t.screen.Show() }
func (t *Window) ShouldClose() bool                    { return t.closed }
func (t *Window) FramebufferSize() (int, int)          { return t.screen.Size() }
func (t *Window) SetTitle(title string)                { t.title = title }
func (t *Window) SetEventCallback(cb func(core.Event)) { t.onEv = cb }

func (t *Window) emit(ev core.Event) {
	if t.onEv != nil {
		t.onEv(ev)
	}
}

func (t *Window) translate(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		t.screen.Sync()
		t.emit(core.EventResize{W: w, H: h})
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
			t.close()
			return
		}
		k := translateKey(ev)
		if k == core.KeyUnknown {
			return
		}
		t.emit(core.EventKey{Key: k, Down: true, Mods: translateMods(ev.Modifiers())})
		// Terminals report presses only.
		t.emit(core.EventKey{Key: k, Down: false, Mods: translateMods(ev.Modifiers())})
		if k == core.KeyQ {
			t.close()
		}
	case *tcell.EventMouse:
		t.mouse(ev)
	}
}

func (t *Window) close() {
	if t.closed {
		return
	}
	t.closed = true
	t.emit(core.EventCloseRequested{})
}

var buttonMap = [...]struct {
	mask tcell.ButtonMask
	btn  core.MouseButton
}{
	{tcell.Button1, core.MouseLeft},
	{tcell.Button2, core.MouseRight},
	{tcell.Button3, core.MouseMiddle},
}

// mouse turns tcell's button state into move, press and release events.
func (t *Window) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if x != t.mx || y != t.my {
		t.mx, t.my = x, y
		t.emit(core.EventMouseMove{X: float64(x), Y: float64(y)})
	}
	b := ev.Buttons()
	switch {
	case b&tcell.WheelUp != 0:
		t.emit(core.EventScroll{Yoff: 1})
	case b&tcell.WheelDown != 0:
		t.emit(core.EventScroll{Yoff: -1})
	case b&tcell.WheelLeft != 0:
		t.emit(core.EventScroll{Xoff: -1})
	case b&tcell.WheelRight != 0:
		t.emit(core.EventScroll{Xoff: 1})
	}
	for _, tb := range buttonMap {
		now, was := b&tb.mask != 0, t.buttons&tb.mask != 0
		if now != was {
			t.emit(core.EventMouseButton{Button: tb.btn, Down: now})
		}
	}
	t.buttons = b & (tcell.Button1 | tcell.Button2 | tcell.Button3)
}

func translateKey(ev *tcell.EventKey) core.Key {
	if ev.Key() != tcell.KeyRune {
		return core.KeyUnknown
	}
	switch ev.Rune() {
	case ' ':
		return core.KeySpace
	case 'q', 'Q':
		return core.KeyQ
	case 'w', 'W':
		return core.KeyW
	case 'a', 'A':
		return core.KeyA
	case 's', 'S':
		return core.KeyS
	case 'd', 'D':
		return core.KeyD
	default:
		return core.KeyUnknown
	}
}

func translateMods(m tcell.ModMask) core.Mod {
	var out core.Mod
	if m&tcell.ModShift != 0 {
		out |= core.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= core.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= core.ModSuper
	}
	return out
}
