package core

import (
	"time"

	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/ui"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called at a fixed tick (60Hz)
	OnUI(e *Engine)                 // declares this frame's UI on e.UI
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	UI       *ui.Ctx

	layers  LayerStack
	start   time.Time
	closing bool
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// RequestClose ends the main loop after the current frame.
func (e *Engine) RequestClose() { e.closing = true }

// PushLayer attaches l on top of the stack; it gets events before the
// layers below it and declares its UI after them.
func (e *Engine) PushLayer(l Layer) {
	e.layers.Push(l)
	l.OnAttach(e)
}

func (e *Engine) PopLayer() (Layer, bool) {
	l, ok := e.layers.Pop()
	if ok {
		l.OnDetach(e)
	}
	return l, ok
}

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer consumes the UI command stream. It also measures text, since
// only it knows the font the text will be drawn with.
type Renderer interface {
	ui.Measurer
	Resize(w, h int)
	Clear(c colors.Color)
	Render(src ui.CommandSource)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyQ
	KeyW
	KeyA
	KeyS
	KeyD
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	UI         ui.Config
}
