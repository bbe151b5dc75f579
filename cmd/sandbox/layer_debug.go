package main

import (
	"fmt"
	"time"

	"github.com/hubastard/nui/engine/core"
	glbackend "github.com/hubastard/nui/engine/gfx/gl"
	"github.com/hubastard/nui/engine/profiler"
	"github.com/hubastard/nui/engine/ui"
)

// LayerDebug shows engine and runtime statistics in a window of its own.
type LayerDebug struct {
	prof     *profiler.Profiler
	renderer *glbackend.RendererGL
	hidden   bool
}

func (l *LayerDebug) OnAttach(e *core.Engine)             {}
func (l *LayerDebug) OnDetach(e *core.Engine)             {}
func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnUI(e *core.Engine) {
	if l.hidden {
		return
	}
	end := l.prof.Start("debug.OnUI")
	defer end()

	w, _ := e.Window.FramebufferSize()
	ctx := e.UI
	if !ctx.WindowBegin("Stats", ui.Box{X: w - 280, Y: 20, W: 260, H: 360}) {
		return
	}
	ctx.Label(fmt.Sprintf("Frame: %d", ctx.Frame()))
	ctx.Label(fmt.Sprintf("Uptime: %s", e.Uptime().Truncate(time.Second)))
	for _, s := range l.prof.Summaries() {
		if s.Name == "frame" && s.Mean > 0 {
			ms := float64(s.Mean.Microseconds()) / 1000
			ctx.Label(fmt.Sprintf("%2.3f ms (%.2f FPS)", ms, 1000/ms))
		}
	}
	ctx.Label(fmt.Sprintf("Hot: %v Active: %v", ctx.Hot(), ctx.Active()))
	if l.renderer != nil {
		st := l.renderer.Stats()
		ctx.Label(fmt.Sprintf("Draw calls: %d Quads: %d", st.DrawCalls, st.QuadCount))
		ctx.Label(fmt.Sprintf("Vertices: %d Indices: %d", st.TotalVertexCount(), st.TotalIndexCount()))
		ctx.Label(fmt.Sprintf("Scissors: %d Culled: %d", st.Scissors, st.Culled))
	}
	ctx.Label(fmt.Sprintf("Memory: %.3f MB", float32(profiler.MemoryUsage())/(1<<20)))
	ctx.Label(fmt.Sprintf("Allocs: %d", profiler.MemoryAllocs()))
	ctx.Label(fmt.Sprintf("Goroutines: %d CPUs: %d", profiler.NumGoroutine(), profiler.NumCPU()))
	ctx.WindowEnd()
}

// OnEvent toggles the panel with Space.
func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeySpace {
		l.hidden = !l.hidden
		return true
	}
	return false
}
