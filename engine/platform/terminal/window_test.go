package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/nui/engine/core"
)

func newSimWindow(t *testing.T) (*Window, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	w, err := New(s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(w.Destroy)
	s.SetSize(20, 10)
	return w, s
}

// collect polls w until n events other than resizes arrived.
func collect(t *testing.T, w *Window, n int) []core.Event {
	t.Helper()
	var got []core.Event
	w.SetEventCallback(func(ev core.Event) {
		if _, ok := ev.(core.EventResize); !ok {
			got = append(got, ev)
		}
	})
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < n && time.Now().Before(deadline) {
		w.PollEvents()
	}
	return got
}

func TestWindowMouse(t *testing.T) {
	w, s := newSimWindow(t)

	s.InjectMouse(3, 4, tcell.ButtonNone, tcell.ModNone)
	s.InjectMouse(3, 4, tcell.Button1, tcell.ModNone)
	s.InjectMouse(5, 4, tcell.Button1, tcell.ModNone)
	s.InjectMouse(5, 4, tcell.ButtonNone, tcell.ModNone)

	want := []core.Event{
		core.EventMouseMove{X: 3, Y: 4},
		core.EventMouseButton{Button: core.MouseLeft, Down: true},
		core.EventMouseMove{X: 5, Y: 4},
		core.EventMouseButton{Button: core.MouseLeft, Down: false},
	}
	if diff := cmp.Diff(want, collect(t, w, len(want))); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestWindowKeys(t *testing.T) {
	w, s := newSimWindow(t)

	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	want := []core.Event{
		core.EventKey{Key: core.KeyW, Down: true},
		core.EventKey{Key: core.KeyW, Down: false},
		core.EventCloseRequested{},
	}
	if diff := cmp.Diff(want, collect(t, w, len(want))); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if !w.ShouldClose() {
		t.Error("ShouldClose = false after Escape")
	}
}

func TestWindowSize(t *testing.T) {
	w, _ := newSimWindow(t)
	if cw, ch := w.FramebufferSize(); cw != 20 || ch != 10 {
		t.Errorf("FramebufferSize = %dx%d, want 20x10", cw, ch)
	}
}
