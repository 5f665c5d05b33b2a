package input

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
)

// Merger is the single authority for the per-tick control signal
// Keyboard and joystick are independent producers; State ORs them per direction
type Merger struct {
	keyboard *Keyboard
	joystick *Joystick
	mode     core.Mode
}

// NewMerger creates a merger in autonomous mode
func NewMerger(table *KeyTable, joystick *Joystick) *Merger {
	return &Merger{
		keyboard: NewKeyboard(table),
		joystick: joystick,
		mode:     core.ModeAutonomous,
	}
}

// SetMode updates the control context
// Leaving player mode drops every held input so the next session starts idle
func (m *Merger) SetMode(mode core.Mode) {
	m.mode = mode
	if mode != core.ModePlayer {
		m.keyboard.Clear()
		m.joystick.Release()
	}
}

// Mode returns the current control context
func (m *Merger) Mode() core.Mode {
	return m.mode
}

// KeyDown handles a key press
// Directional keys register only under player control; exit is reported only then too
func (m *Merger) KeyDown(k Key) Intent {
	if m.mode != core.ModePlayer {
		return IntentNone
	}
	if m.keyboard.Press(k) == ActionExit {
		return IntentExit
	}
	return IntentNone
}

// KeyUp handles a key release
func (m *Merger) KeyUp(k Key) {
	if m.mode != core.ModePlayer {
		return
	}
	m.keyboard.Release(k)
}

// JoystickMove forwards a stick displacement
func (m *Merger) JoystickMove(d mgl64.Vec2) error {
	return m.joystick.Move(d)
}

// JoystickRelease recenters the stick
func (m *Merger) JoystickRelease() {
	m.joystick.Release()
}

// Joystick exposes the stick for overlay rendering
func (m *Merger) Joystick() *Joystick {
	return m.joystick
}

// State returns the merged signal
func (m *Merger) State() State {
	return Merge(m.keyboard.State(), m.joystick.State())
}
