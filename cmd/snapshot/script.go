package main

import "github.com/hubastard/nui/engine/core"

// scriptWindow is a headless core.Window that delivers one batch of events
// per frame and asks to close when the script is exhausted.
type scriptWindow struct {
	w, h   int
	frames [][]core.Event
	next   int
	cb     func(core.Event)
}

func newScriptWindow(w, h int, frames [][]core.Event) *scriptWindow {
	return &scriptWindow{w: w, h: h, frames: frames}
}

func (s *scriptWindow) PollEvents() {
	if s.next < len(s.frames) && s.cb != nil {
		for _, ev := range s.frames[s.next] {
			s.cb(ev)
		}
	}
	s.next++
}

func (s *scriptWindow) SwapBuffers()                         {}
func (s *scriptWindow) ShouldClose() bool                    { return s.next > len(s.frames) }
func (s *scriptWindow) FramebufferSize() (int, int)          { return s.w, s.h }
func (s *scriptWindow) SetTitle(string)                      {}
func (s *scriptWindow) SetEventCallback(cb func(core.Event)) { s.cb = cb }

func move(x, y float64) core.Event { return core.EventMouseMove{X: x, Y: y} }

func press(down bool) core.Event {
	return core.EventMouseButton{Button: core.MouseLeft, Down: down}
}

// click spans three frames: hover, press, release.
func click(x, y float64) [][]core.Event {
	return [][]core.Event{{move(x, y)}, {press(true)}, {press(false)}}
}

// script clicks Add twice, then drags the Notes window by its title bar
// and finally raises Controls above it. Coordinates assume the demo at
// unit 10 with the default style and the 7x13 face.
func script() [][]core.Event {
	var s [][]core.Event
	s = append(s, nil)
	s = append(s, click(40, 95)...)
	s = append(s, click(40, 95)...)
	s = append(s,
		[]core.Event{move(240, 110)},
		[]core.Event{press(true)},
		[]core.Event{move(300, 150)},
		[]core.Event{move(340, 200)},
		[]core.Event{press(false)},
	)
	s = append(s, click(100, 30)...)
	return s
}
