package main

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/input"
)

// Terminals report presses and auto-repeats but never releases
// A held key stays down while repeats keep arriving within holdWindow
const holdWindow = 550 * time.Millisecond

// keyHold synthesizes key-up from repeat silence; driver goroutine only
type keyHold struct {
	window time.Duration
	until  map[input.Key]time.Time
}

func newKeyHold(window time.Duration) *keyHold {
	return &keyHold{window: window, until: make(map[input.Key]time.Time)}
}

// press records a press or repeat, pushing the release deadline out
func (h *keyHold) press(k input.Key, now time.Time) {
	h.until[k] = now.Add(h.window)
}

// expire returns keys whose repeats stopped, removing them
func (h *keyHold) expire(now time.Time) []input.Key {
	var released []input.Key
	for k, t := range h.until {
		if !now.Before(t) {
			released = append(released, k)
			delete(h.until, k)
		}
	}
	return released
}

// releaseAll returns and forgets every held key
func (h *keyHold) releaseAll() []input.Key {
	released := make([]input.Key, 0, len(h.until))
	for k := range h.until {
		released = append(released, k)
	}
	clear(h.until)
	return released
}

// pressKey forwards a press or repeat to the simulation; driver goroutine only
// Repeats are resent so a key held across a mode change takes effect once the helm is taken
func pressKey(s *engine.Simulation, h *keyHold, k input.Key, now time.Time) {
	before := s.Mode()
	h.press(k, now)
	s.KeyDown(k)
	// Leaving the helm drops every held key
	if before != s.Mode() && s.Mode() == core.ModeAutonomous {
		h.releaseAll()
	}
}

// keyName maps a tcell key event to the normalized key name, empty when unmapped
func keyName(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyArrowUp
	case tcell.KeyDown:
		return input.KeyArrowDown
	case tcell.KeyLeft:
		return input.KeyArrowLeft
	case tcell.KeyRight:
		return input.KeyArrowRight
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyRune:
		return input.ParseKey(strings.ToLower(string(ev.Rune())))
	}
	return ""
}
