package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/nui/cmd/internal/demo"
	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/core"
	"github.com/hubastard/nui/engine/gfx/term"
	"github.com/hubastard/nui/engine/platform/terminal"
	"github.com/hubastard/nui/engine/theme"
	"github.com/hubastard/nui/engine/ui"
)

type App struct{}

func (App) OnStart(e *core.Engine)              { e.PushLayer(&demo.Layer{Unit: 1}) }
func (App) OnUpdate(e *core.Engine, dt float64) {}
func (App) OnUI(e *core.Engine)                 {}
func (App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		e.RequestClose()
	}
}
func (App) OnShutdown(e *core.Engine) {}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "termdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	themePath := flag.String("theme", "", "TOML theme file")
	logPath := flag.String("log", "", "write logs to this file (the terminal is in use)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))

	uiCfg := ui.DefaultConfig()
	uiCfg.Style = term.Style()
	if *themePath != "" {
		var err error
		if uiCfg, err = theme.LoadOver(*themePath, uiCfg); err != nil {
			return err
		}
	}

	var win *terminal.Window
	newWindow := func(core.Config) (core.Window, error) {
		w, err := terminal.New(nil)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, _ core.Config) (core.Renderer, error) {
		return term.NewRenderer(win.Screen()), nil
	}
	defer func() {
		if win != nil {
			win.Destroy()
		}
	}()

	return core.Run(App{}, core.Config{
		Title:      "nui termdemo",
		ClearColor: colors.Black,
		UI:         uiCfg,
	}, newWindow, newRenderer)
}
