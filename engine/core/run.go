package core

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/nui/engine/ui"
)

// Run wires the platform window + renderer and executes the main loop. Each
// rendered frame is one UI frame: layers then the app declare their UI, and
// the resulting command stream is handed to the renderer.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		UI:       ui.New(cfg.UI, rend),
		start:    time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		Feed(eng.UI, ev)
		eng.layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) updates, one UI frame per rendered frame.
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	var runErr error
	for !win.ShouldClose() && !eng.closing {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		dt := float64(tick) / float64(time.Second)
		for steps := 0; accum >= tick && steps < maxStep; steps++ {
			eng.layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			app.OnUpdate(eng, dt)
			accum -= tick
		}

		eng.UI.FrameBegin()
		eng.layers.ForEach(func(l Layer) { l.OnUI(eng) })
		app.OnUI(eng)
		if err := eng.UI.FrameEnd(); err != nil {
			runErr = err
			break
		}

		rend.Clear(cfg.ClearColor)
		rend.Render(eng.UI)
		win.SwapBuffers()
	}

	for eng.layers.Len() > 0 {
		eng.PopLayer()
	}
	app.OnShutdown(eng)
	slog.Info("engine exit", "frames", eng.UI.Frame(), "uptime", eng.Uptime(), "err", runErr)
	return runErr
}
