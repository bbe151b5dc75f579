// Command snapshot plays a scripted input sequence against the demo UI
// without a display and writes the final frame to a PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/nui/cmd/internal/demo"
	"github.com/hubastard/nui/engine/colors"
	"github.com/hubastard/nui/engine/core"
	"github.com/hubastard/nui/engine/gfx/raster"
	"github.com/hubastard/nui/engine/text"
	"github.com/hubastard/nui/engine/theme"
	"github.com/hubastard/nui/engine/ui"
)

type App struct {
	layer *demo.Layer
	eng   *core.Engine
}

func (a *App) OnStart(e *core.Engine) {
	a.eng = e
	e.PushLayer(a.layer)
}
func (a *App) OnUpdate(e *core.Engine, dt float64)   {}
func (a *App) OnUI(e *core.Engine)                   {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {}
func (a *App) OnShutdown(e *core.Engine) {
	slog.Info("snapshot done", "frames", e.UI.Frame(), "clicks", a.layer.Clicks)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("o", "snapshot.png", "output PNG")
	width := flag.Int("w", 640, "image width")
	height := flag.Int("h", 400, "image height")
	themePath := flag.String("theme", "", "TOML theme file")
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

	canvas := raster.New(*width, *height, text.Default())
	app := &App{layer: &demo.Layer{Unit: 10}}
	err := core.Run(app, core.Config{ClearColor: colors.DarkGray, UI: uiCfg},
		func(core.Config) (core.Window, error) {
			return newScriptWindow(*width, *height, script()), nil
		},
		func(core.Window, core.Config) (core.Renderer, error) { return canvas, nil },
	)
	if err != nil {
		return err
	}
	if err := canvas.SavePNG(*out); err != nil {
		return err
	}
	slog.Info("wrote snapshot", "path", *out, "stats", fmt.Sprintf("%+v", canvas.Stats()))
	return nil
}
