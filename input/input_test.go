package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
)

func newTestMerger() *Merger {
	return NewMerger(nil, NewJoystick(parameter.JoystickMaxRadius, parameter.JoystickDeadZone))
}

func TestMergeIsLogicalOr(t *testing.T) {
	a := State{Up: true}
	b := State{Up: true, Left: true}
	assert.Equal(t, State{Up: true, Left: true}, Merge(a, b))
	assert.False(t, Merge(State{}, State{}).Any())
}

func TestParseKey(t *testing.T) {
	assert.Equal(t, KeyArrowUp, ParseKey("ArrowUp"))
	assert.Equal(t, KeyArrowUp, ParseKey(" up "))
	assert.Equal(t, KeyEscape, ParseKey("Esc"))
	assert.Equal(t, Key("w"), ParseKey("W"))
}

func TestKeysIgnoredWhileAutonomous(t *testing.T) {
	m := newTestMerger()
	assert.Equal(t, IntentNone, m.KeyDown(KeyArrowUp))
	assert.Equal(t, IntentNone, m.KeyDown(KeyEscape))
	assert.False(t, m.State().Any())
}

func TestKeyboardSetsAndClears(t *testing.T) {
	m := newTestMerger()
	m.SetMode(core.ModePlayer)

	m.KeyDown(KeyArrowUp)
	m.KeyDown("a")
	assert.Equal(t, State{Up: true, Left: true}, m.State())

	m.KeyUp(KeyArrowUp)
	assert.Equal(t, State{Left: true}, m.State())
}

func TestEscapeExitsOnlyInPlayer(t *testing.T) {
	m := newTestMerger()
	m.SetMode(core.ModePlayer)
	assert.Equal(t, IntentExit, m.KeyDown(KeyEscape))

	m.SetMode(core.ModeAutonomous)
	assert.Equal(t, IntentNone, m.KeyDown(KeyEscape))
}

func TestLeavingPlayerClearsInput(t *testing.T) {
	m := newTestMerger()
	m.SetMode(core.ModePlayer)
	m.KeyDown(KeyArrowRight)
	require.NoError(t, m.JoystickMove(mgl64.Vec2{0, -40}))
	require.True(t, m.State().Any())

	m.SetMode(core.ModeAutonomous)
	assert.False(t, m.State().Any())
	assert.False(t, m.Joystick().Active)
}

func TestKeyboardAndJoystickMerge(t *testing.T) {
	m := newTestMerger()
	m.SetMode(core.ModePlayer)
	m.KeyDown(KeyArrowUp)
	require.NoError(t, m.JoystickMove(mgl64.Vec2{0, -50}))
	// Both producers assert up; OR, not sum
	assert.Equal(t, State{Up: true}, m.State())

	m.KeyUp(KeyArrowUp)
	assert.Equal(t, State{Up: true}, m.State())

	m.JoystickRelease()
	assert.Equal(t, State{}, m.State())
}

func TestJoystickClampsToMaxRadius(t *testing.T) {
	j := NewJoystick(50, 0.3)
	require.NoError(t, j.Move(mgl64.Vec2{300, 400}))
	assert.InDelta(t, 50.0, j.Displacement.Len(), 1e-9)
	assert.InDelta(t, 30.0, j.Displacement.X(), 1e-9)

	for _, d := range []mgl64.Vec2{{1e6, 0}, {-80, 80}, {0, -51}, {10, 10}} {
		require.NoError(t, j.Move(d))
		assert.LessOrEqual(t, j.Displacement.Len(), j.MaxRadius+1e-9)
	}
}

func TestJoystickDeadZone(t *testing.T) {
	j := NewJoystick(100, 0.3)

	require.NoError(t, j.Move(mgl64.Vec2{29, -29}))
	assert.Equal(t, State{}, j.State(), "components below dead zone never register")

	require.NoError(t, j.Move(mgl64.Vec2{0, -31}))
	assert.Equal(t, State{Up: true}, j.State())

	require.NoError(t, j.Move(mgl64.Vec2{0, 31}))
	assert.Equal(t, State{Down: true}, j.State())

	require.NoError(t, j.Move(mgl64.Vec2{-50, 5}))
	assert.Equal(t, State{Left: true}, j.State())

	require.NoError(t, j.Move(mgl64.Vec2{50, -50}))
	assert.Equal(t, State{Up: true, Right: true}, j.State())
}

func TestJoystickReleaseClears(t *testing.T) {
	j := NewJoystick(50, 0.3)
	require.NoError(t, j.Move(mgl64.Vec2{50, 0}))
	j.Release()
	assert.False(t, j.Active)
	assert.Equal(t, mgl64.Vec2{}, j.Displacement)
	assert.Equal(t, State{}, j.State())
}

func TestJoystickRejectsInvalid(t *testing.T) {
	j := NewJoystick(50, 0.3)
	require.NoError(t, j.Move(mgl64.Vec2{10, 0}))

	err := j.Move(mgl64.Vec2{math.NaN(), 0})
	assert.ErrorIs(t, err, ErrInvalidDisplacement)
	assert.Equal(t, mgl64.Vec2{10, 0}, j.Displacement)

	assert.ErrorIs(t, j.Move(mgl64.Vec2{0, math.Inf(1)}), ErrInvalidDisplacement)
}

func TestJoystickZeroRadiusGuarded(t *testing.T) {
	j := NewJoystick(0, 0.3)
	assert.Equal(t, parameter.JoystickMinRadius, j.MaxRadius)
	require.NoError(t, j.Move(mgl64.Vec2{5, 0}))
	n := j.Normalized()
	assert.False(t, math.IsNaN(n.X()))
	assert.InDelta(t, 1.0, n.X(), 1e-12)

	j.SetMaxRadius(math.NaN())
	assert.Equal(t, parameter.JoystickMinRadius, j.MaxRadius)
}

func TestLoadBindings(t *testing.T) {
	table, err := LoadBindings(map[string]string{"i": "up", "w": "none", "Q": "exit"})
	require.NoError(t, err)
	assert.Equal(t, ActionUp, table.Lookup("i"))
	assert.Equal(t, ActionNone, table.Lookup("w"))
	assert.Equal(t, ActionExit, table.Lookup("q"))
	assert.Equal(t, ActionUp, table.Lookup(KeyArrowUp))

	_, err = LoadBindings(map[string]string{"x": "jump"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}
