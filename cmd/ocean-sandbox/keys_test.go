package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/input"
)

const dt = 1.0 / 60

func newSandboxSim(t *testing.T) *engine.Simulation {
	t.Helper()
	opts := engine.DefaultOptions()
	opts.GridSegments = 16
	sim, err := engine.NewSimulation(opts)
	require.NoError(t, err)
	return sim
}

func takeHelm(t *testing.T, sim *engine.Simulation) {
	t.Helper()
	p := sim.State().Vessel.Position
	td := camera.TopDown{Center: mgl64.Vec2{p.X(), p.Z()}, Span: 100, Width: 100, Height: 100, CellAspect: 1}
	ok, err := sim.PointerSelect(50, 50, td)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestKeyHoldRepeatsExtend(t *testing.T) {
	h := newKeyHold(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.press(input.KeyArrowUp, t0)
	h.press(input.KeyArrowUp, t0.Add(80*time.Millisecond))
	assert.Contains(t, h.until, input.KeyArrowUp)

	assert.Empty(t, h.expire(t0.Add(150*time.Millisecond)))
	assert.Equal(t, []input.Key{input.KeyArrowUp}, h.expire(t0.Add(180*time.Millisecond)))
	assert.NotContains(t, h.until, input.KeyArrowUp)
	assert.Empty(t, h.expire(t0.Add(time.Second)))
}

func TestKeyHoldReleaseAll(t *testing.T) {
	h := newKeyHold(time.Second)
	now := time.Now()
	h.press("w", now)
	h.press("a", now)

	assert.ElementsMatch(t, []input.Key{"w", "a"}, h.releaseAll())
	assert.Empty(t, h.expire(now.Add(time.Hour)))
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyArrowUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyArrowLeft},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyEscape},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), "w"},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyName(tt.ev))
	}
}

func TestKeyHeldAcrossSelectDrives(t *testing.T) {
	sim := newSandboxSim(t)
	h := newKeyHold(holdWindow)
	now := time.Unix(0, 0)
	sim.Tick(0, dt)

	// Up goes down while cruising and is ignored there
	pressKey(sim, h, input.KeyArrowUp, now)
	require.Contains(t, h.until, input.KeyArrowUp)

	takeHelm(t, sim)
	require.Equal(t, core.ModePlayer, sim.Mode())

	// Auto-repeats keep arriving after the helm is taken
	for i := 1; i <= 33; i++ {
		now = now.Add(30 * time.Millisecond)
		pressKey(sim, h, input.KeyArrowUp, now)
		for _, k := range h.expire(now) {
			sim.KeyUp(k)
		}
		sim.Tick(float64(i)*dt, dt)
	}
	assert.Greater(t, sim.State().Vessel.Speed(), 0.0)
}

func TestEscapeDropsHeldKeys(t *testing.T) {
	sim := newSandboxSim(t)
	h := newKeyHold(holdWindow)
	now := time.Unix(0, 0)
	sim.Tick(0, dt)
	takeHelm(t, sim)

	pressKey(sim, h, input.KeyArrowLeft, now)
	require.Contains(t, h.until, input.KeyArrowLeft)

	pressKey(sim, h, input.KeyEscape, now)
	assert.Equal(t, core.ModeAutonomous, sim.Mode())
	assert.NotContains(t, h.until, input.KeyArrowLeft)
	assert.NotContains(t, h.until, input.KeyEscape)
}
