package engine

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/event"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/scene"
	"github.com/lixenwraith/tidewake/status"
	"github.com/lixenwraith/tidewake/vmath"
)

const dt = 1.0 / 60

func newTestSim(t *testing.T, mutate ...func(*Options)) *Simulation {
	t.Helper()
	opts := DefaultOptions()
	opts.GridSegments = 16
	for _, fn := range mutate {
		fn(&opts)
	}
	s, err := NewSimulation(opts)
	require.NoError(t, err)
	return s
}

// overhead returns a top-down projector whose center pixel looks straight down at p
func overhead(p mgl64.Vec3) camera.TopDown {
	return camera.TopDown{Center: mgl64.Vec2{p.X(), p.Z()}, Span: 100, Width: 100, Height: 100, CellAspect: 1}
}

func selectVessel(t *testing.T, s *Simulation) {
	t.Helper()
	ok, err := s.PointerSelect(50, 50, overhead(s.State().Vessel.Position))
	require.NoError(t, err)
	require.True(t, ok)
}

func record(s *Simulation, types ...event.EventType) *[]event.GameEvent {
	var got []event.GameEvent
	s.Bus().Subscribe(func(ev event.GameEvent) { got = append(got, ev) }, types...)
	return &got
}

func TestSelectEntersPlayer(t *testing.T) {
	s := newTestSim(t)
	events := record(s, event.EventModeChanged, event.EventSessionStarted)
	s.Tick(0, dt)

	selectVessel(t, s)

	st := s.State()
	assert.Equal(t, core.ModePlayer, s.Mode())
	tn := st.Vessel.Tuning()
	assert.InDelta(t, tn.BaseScale*tn.PlayerScaleFactor, st.Vessel.Scale, 1e-12)
	assert.Equal(t, core.Kinetic{}, st.Vessel.Kinetic())
	assert.Equal(t, 15, st.Fragments.Remaining())
	assert.Equal(t, 0, st.Fragments.Count())
	assert.Equal(t, camera.ModeFollow, st.Camera.Mode())

	require.Len(t, *events, 2)
	assert.Equal(t, event.EventModeChanged, (*events)[0].Type)
	assert.Equal(t, core.ModePlayer, (*events)[0].Payload.(*event.ModeChangedPayload).To)
	assert.Equal(t, 15, (*events)[1].Payload.(*event.SessionStartedPayload).Fragments)
	assert.Equal(t, "player", s.Registry().Snapshot()[status.KeyMode])
}

func TestSelectThroughPerspective(t *testing.T) {
	s := newTestSim(t, func(o *Options) {
		from := o.Vessel.PathFrom
		o.CameraHome = camera.Pose{Position: from.Add(mgl64.Vec3{0, 20, 20}), LookAt: from}
	})
	s.Tick(0, dt)

	proj := s.Projector(800, 600)
	x, y, ok := proj.Project(s.State().Vessel.Position)
	require.True(t, ok)

	hit, err := s.PointerSelect(x, y, proj)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, core.ModePlayer, s.Mode())
}

func TestDefaultViewCoversCruise(t *testing.T) {
	s := newTestSim(t)
	ticks := int(2*math.Pi/s.State().Vessel.Path().Speed) + 2

	for i := 0; i < ticks; i++ {
		s.Tick(float64(i)*dt, dt)
		proj := s.Projector(800, 600)
		x, y, ok := proj.Project(s.State().Vessel.Position)
		require.True(t, ok, "tick %d behind camera", i)
		require.True(t, x >= 0 && x <= 800 && y >= 0 && y <= 600, "tick %d projects to (%.1f, %.1f)", i, x, y)
	}

	proj := s.Projector(800, 600)
	x, y, _ := proj.Project(s.State().Vessel.Position)
	hit, err := s.PointerSelect(x, y, proj)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestSelectMissLeavesState(t *testing.T) {
	s := newTestSim(t)
	s.Tick(0, dt)
	far := s.State().Vessel.Position.Add(mgl64.Vec3{60, 0, 60})

	ok, err := s.PointerSelect(50, 50, overhead(far))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, core.ModeAutonomous, s.Mode())
	assert.Equal(t, 0, s.State().Fragments.Remaining())
}

func TestSelectInvalidPointer(t *testing.T) {
	s := newTestSim(t)
	s.Tick(0, dt)
	before := s.State().Vessel.Transform

	for _, pt := range [][2]float64{{math.NaN(), 1}, {1, math.Inf(-1)}, {-5, 10}, {10, 500}} {
		ok, err := s.PointerSelect(pt[0], pt[1], overhead(before.Position))
		assert.False(t, ok)
		assert.ErrorIs(t, err, camera.ErrInvalidPointer)
	}
	assert.Equal(t, core.ModeAutonomous, s.Mode())
	assert.Equal(t, before, s.State().Vessel.Transform)
}

func TestSelectIgnoredInPlayer(t *testing.T) {
	s := newTestSim(t)
	s.Tick(0, dt)
	selectVessel(t, s)
	spawned := s.State().Fragments.Fragments()

	ok, err := s.PointerSelect(50, 50, overhead(s.State().Vessel.Position))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, spawned, s.State().Fragments.Fragments())
}

func TestCollectAndExit(t *testing.T) {
	s := newTestSim(t)
	collected := record(s, event.EventFragmentCollected)
	ended := record(s, event.EventSessionEnded)
	s.Tick(0, dt)
	selectVessel(t, s)

	st := s.State()
	target := st.Fragments.Fragments()[0].Position
	st.Vessel.Position = mgl64.Vec3{target.X(), st.Vessel.Position.Y(), target.Z()}
	s.Tick(dt, dt)

	require.GreaterOrEqual(t, st.Fragments.Count(), 1)
	require.NotEmpty(t, *collected)
	p := (*collected)[0].Payload.(*event.FragmentCollectedPayload)
	assert.Equal(t, st.Fragments.Count(), p.Count)
	count := st.Fragments.Count()

	s.KeyDown(input.KeyEscape)

	assert.Equal(t, core.ModeAutonomous, s.Mode())
	assert.Equal(t, 0, st.Fragments.Count())
	assert.Equal(t, 0, st.Fragments.Remaining())
	assert.Equal(t, camera.DefaultPose(), st.Camera.Pose())
	assert.Equal(t, camera.ModeStatic, st.Camera.Mode())
	assert.Equal(t, st.Vessel.Tuning().BaseScale, st.Vessel.Scale)
	require.Len(t, *ended, 1)
	assert.Equal(t, count, (*ended)[0].Payload.(*event.SessionEndedPayload).Collected)
	assert.Equal(t, "0", s.Registry().Snapshot()[status.KeyCollected])
}

func TestEscapeIgnoredWhileAutonomous(t *testing.T) {
	s := newTestSim(t)
	changes := record(s, event.EventModeChanged)
	s.KeyDown(input.KeyEscape)
	assert.False(t, s.Exit())
	assert.Equal(t, core.ModeAutonomous, s.Mode())
	assert.Empty(t, *changes)
}

func TestHeldKeysDropOnExit(t *testing.T) {
	s := newTestSim(t)
	s.Tick(0, dt)
	selectVessel(t, s)
	s.KeyDown(input.KeyArrowUp)
	s.JoystickMove(mgl64.Vec2{0, -50})
	require.True(t, s.merger.State().Up)

	s.Exit()
	assert.False(t, s.merger.State().Any())

	selectVessel(t, s)
	s.Tick(dt, dt)
	assert.Equal(t, 0.0, s.State().Vessel.Speed())
}

func TestTickClampsDelta(t *testing.T) {
	s := newTestSim(t)
	s.Tick(0, dt)
	selectVessel(t, s)
	s.KeyDown(input.KeyArrowUp)

	s.Tick(5, 5)
	tn := s.State().Vessel.Tuning()
	want := tn.Acceleration * s.maxDelta * 60 * tn.Friction
	assert.InDelta(t, want, s.State().Vessel.Speed(), 1e-12)

	before := s.State().Vessel.Speed()
	s.Tick(5, math.NaN())
	assert.InDelta(t, before*tn.Friction, s.State().Vessel.Speed(), 1e-12)
}

func TestFragmentsFrozenWhileAutonomous(t *testing.T) {
	s := newTestSim(t)
	for i := 0; i < 10; i++ {
		s.Tick(float64(i)*dt, dt)
	}
	assert.Equal(t, 0, s.State().Fragments.Remaining())
	assert.Equal(t, int64(10), s.State().Frame)
	assert.Equal(t, "10", s.Registry().Snapshot()[status.KeyTicks])
	assert.Equal(t, "0", s.Registry().Snapshot()[status.KeyEventsLost])
}

func TestHitTestDisabledWithoutHull(t *testing.T) {
	s := newTestSim(t, func(o *Options) { o.Hull = nil })
	s.Tick(0, dt)
	assert.False(t, s.HitTestReady())

	_, err := s.PointerSelect(50, 50, overhead(s.State().Vessel.Position))
	assert.ErrorIs(t, err, ErrHitTestDisabled)
	assert.Equal(t, core.ModeAutonomous, s.Mode())
}

func TestLoadHullFailureThenRetry(t *testing.T) {
	s := newTestSim(t)
	unavailable := record(s, event.EventHullUnavailable)
	available := record(s, event.EventHullAvailable)
	boom := errors.New("disk gone")

	err := s.LoadHull(context.Background(), HullLoaderFunc(func(context.Context) (scene.Hull, error) {
		return scene.Hull{}, boom
	}))
	require.ErrorIs(t, err, ErrAssetUnavailable)
	require.ErrorIs(t, err, boom)
	assert.False(t, s.HitTestReady())
	require.Len(t, *unavailable, 1)

	s.Tick(0, dt)
	assert.Equal(t, int64(1), s.State().Frame)

	require.NoError(t, s.LoadHull(context.Background(), StaticHull(scene.DefaultHull())))
	assert.True(t, s.HitTestReady())
	assert.NotEmpty(t, *available)
	selectVessel(t, s)
}

func TestFileHull(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hull.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"halfExtents":[2,1,5]}`), 0o644))

	h, err := FileHull{Path: path}.LoadHull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{2, 1, 5}, h.HalfExtents)

	_, err = FileHull{Path: filepath.Join(dir, "missing.json")}.LoadHull(context.Background())
	assert.ErrorIs(t, err, ErrAssetUnavailable)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"halfExtents":[0,1,5]}`), 0o644))
	_, err = FileHull{Path: bad}.LoadHull(context.Background())
	assert.ErrorIs(t, err, ErrAssetUnavailable)
}

func TestCustomPicker(t *testing.T) {
	s := newTestSim(t)
	s.SetPicker(pickerFunc(func() (scene.EntityID, bool) { return scene.EntityVessel, true }))
	ok, err := s.PointerSelect(1, 1, overhead(mgl64.Vec3{80, 0, 80}))
	require.NoError(t, err)
	assert.True(t, ok)
}

type pickerFunc func() (scene.EntityID, bool)

func (f pickerFunc) Intersect(_ vmath.Ray) (scene.EntityID, bool) { return f() }

func TestFrameSnapshot(t *testing.T) {
	s := newTestSim(t)
	s.Tick(0.5, dt)
	selectVessel(t, s)
	s.JoystickMove(mgl64.Vec2{10, 0})

	f := s.Frame()
	assert.Equal(t, core.ModePlayer, f.Mode)
	assert.Equal(t, int64(1), f.Number)
	assert.Len(t, f.Fragments, 15)
	assert.True(t, f.HitTestReady)
	assert.True(t, f.Joystick.Active)
	assert.Equal(t, camera.ModeFollow, f.CameraMode)
	assert.Same(t, s.State().Grid, f.Wave)

	f.Fragments[0].Position = mgl64.Vec3{}
	assert.NotEqual(t, mgl64.Vec3{}, s.State().Fragments.Fragments()[0].Position)
}

func TestNewSimulationRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.GridSegments = 0
	_, err := NewSimulation(opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.MaxDelta = 0
	_, err = NewSimulation(opts)
	assert.Error(t, err)
}
