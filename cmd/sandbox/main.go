package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/nui/cmd/internal/demo"
	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/core"
	glbackend "github.com/hubastard/nui/engine/gfx/gl"
	"github.com/hubastard/nui/engine/platform"
	"github.com/hubastard/nui/engine/profiler"
	"github.com/hubastard/nui/engine/text"
	"github.com/hubastard/nui/engine/theme"
	"github.com/hubastard/nui/engine/ui"
)

type App struct {
	prof       *profiler.Profiler
	renderer   *glbackend.RendererGL
	lastFrame  time.Time
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	e.PushLayer(&demo.Layer{Unit: 10})

	a.debugLayer = &LayerDebug{prof: a.prof, renderer: a.renderer}
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnUI(e *core.Engine) {
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.prof.Record("frame", now.Sub(a.lastFrame))
	}
	a.lastFrame = now
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		e.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	for _, s := range a.prof.Summaries() {
		slog.Info("profile", "scope", s.Name, "count", s.Count, "mean", s.Mean, "max", s.Max)
	}
}

func main() {
	if err := run(); err != nil {
		slog.Error("sandbox", "err", err)
		os.Exit(1)
	}
}

func run() error {
	themePath := flag.String("theme", "", "TOML theme file")
	fontPath := flag.String("font", "", "TTF font file (default: built-in 7x13)")
	fontSize := flag.Float64("size", 16, "font size in pixels")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	uiCfg := ui.DefaultConfig()
	if *themePath != "" {
		var err error
		if uiCfg, err = theme.Load(*themePath); err != nil {
			return err
		}
	}

	face := text.Default()
	if *fontPath != "" {
		var err error
		if face, err = text.LoadTTF(*fontPath, *fontSize); err != nil {
			return err
		}
		defer face.Close()
	}
	face.FitLineHeight(&uiCfg.Style)

	atlas, err := text.NewAtlas(face)
	if err != nil {
		return err
	}

	cfg := core.Config{
		Title:      "nui sandbox",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
		UI:         uiCfg,
	}
	app := &App{prof: profiler.New(1 << 10)}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(w, atlas)
		if err != nil {
			return nil, err
		}
		app.renderer = r
		return r, nil
	}
	// Runs after core.Run has shut the renderer down, while GL is still live.
	defer func() {
		if win != nil {
			win.Destroy()
		}
	}()

	return core.Run(app, cfg, newWindow, newRenderer)
}
