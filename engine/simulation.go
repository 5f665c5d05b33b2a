// Package engine owns the simulation: the per-tick Step, mode transitions,
// hit-testing, and the driver loop that serializes host input onto one goroutine.
package engine

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/collectible"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/event"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/scene"
	"github.com/lixenwraith/tidewake/status"
	"github.com/lixenwraith/tidewake/vessel"
	"github.com/lixenwraith/tidewake/wave"
)

// Simulation is the single owner of State
// Every method must be called from the same goroutine; Driver provides that goroutine
type Simulation struct {
	state  State
	merger *input.Merger

	preset     camera.Preset
	presetName string
	fov        float64
	maxDelta   float64

	// picker is nil while hit-testing is disabled
	picker     scene.Picker
	hullPicker *scene.HullPicker

	bus *event.Bus
	reg *status.Registry
	log zerolog.Logger

	// Cached metric pointers
	statTicks     *atomic.Int64
	statCollected *atomic.Int64
	statRemaining *atomic.Int64
	statSpeed     *status.AtomicFloat
	statMode      *status.AtomicString
	statHull      *atomic.Bool
	statLost      *atomic.Int64
}

// NewSimulation builds the initial autonomous state
func NewSimulation(opts Options) (*Simulation, error) {
	if opts.GridSegments < 1 {
		return nil, fmt.Errorf("grid segments %d: must be positive", opts.GridSegments)
	}
	if opts.MaxDelta <= 0 || math.IsNaN(opts.MaxDelta) {
		return nil, fmt.Errorf("max delta %v: must be positive", opts.MaxDelta)
	}
	if opts.Field == nil {
		opts.Field = wave.Field{}
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	if opts.Bus == nil {
		opts.Bus = event.NewBus()
	}
	if opts.Registry == nil {
		opts.Registry = status.NewRegistry()
	}

	s := &Simulation{
		state: State{
			Field:     opts.Field,
			Grid:      wave.NewGrid(opts.GridSegments, opts.GridSize, opts.NormalInterval),
			Vessel:    vessel.New(opts.Vessel),
			Fragments: collectible.NewManager(opts.Fragments, opts.Bounds, opts.Seed),
			Camera:    camera.NewController(opts.CameraHome, opts.AutoRotateSpeed, opts.YawDamping),
		},
		merger:     input.NewMerger(opts.Keys, input.NewJoystick(opts.JoystickRadius, opts.JoystickDeadZone)),
		preset:     opts.Preset,
		presetName: opts.PresetName,
		fov:        opts.FOV,
		maxDelta:   opts.MaxDelta,
		bus:        opts.Bus,
		reg:        opts.Registry,
		log:        opts.Logger.With().Str("component", "engine").Logger(),
	}

	s.statTicks = s.reg.Ints.Get(status.KeyTicks)
	s.statCollected = s.reg.Ints.Get(status.KeyCollected)
	s.statRemaining = s.reg.Ints.Get(status.KeyRemaining)
	s.statSpeed = s.reg.Floats.Get(status.KeySpeed)
	s.statMode = s.reg.Strings.Get(status.KeyMode)
	s.statHull = s.reg.Bools.Get(status.KeyHullLoaded)
	s.statLost = s.reg.Ints.Get(status.KeyEventsLost)

	s.state.Grid.Update(0)
	if opts.Hull != nil {
		s.AttachHull(*opts.Hull)
	}
	s.publishMetrics()
	return s, nil
}

// Bus exposes the notification bus for subscriptions
func (s *Simulation) Bus() *event.Bus { return s.bus }

// Registry exposes the metrics registry
func (s *Simulation) Registry() *status.Registry { return s.reg }

// Mode returns the vessel control mode
func (s *Simulation) Mode() core.Mode { return s.state.Vessel.Mode() }

// State exposes the owned state for inspection on the owning goroutine
func (s *Simulation) State() *State { return &s.state }

// Tick advances the simulation by delta seconds at elapsed time
// Delta is clamped to [0, MaxDelta]; non-finite values become 0
func (s *Simulation) Tick(elapsed, delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		delta = 0
	}
	if delta > s.maxDelta {
		delta = s.maxDelta
	}
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		elapsed = s.state.Elapsed + delta
	}

	res := Step(&s.state, s.merger.State(), elapsed, delta)
	if s.hullPicker != nil {
		s.hullPicker.Place(s.state.Vessel.Transform)
	}

	if res.Collected > 0 {
		count := s.state.Fragments.Count()
		s.log.Debug().Int("collected", res.Collected).Int("count", count).Msg("fragment collected")
		s.bus.Emit(event.EventFragmentCollected, &event.FragmentCollectedPayload{
			Collected: res.Collected,
			Count:     count,
			Remaining: s.state.Fragments.Remaining(),
			Vessel:    s.state.Vessel.Position,
		}, s.state.Frame)
	}

	s.statTicks.Add(1)
	s.publishMetrics()
	s.bus.Dispatch()
}

// KeyDown routes a key press; Escape under player control exits
func (s *Simulation) KeyDown(k input.Key) {
	if s.merger.KeyDown(k) == input.IntentExit {
		s.Exit()
	}
}

// KeyUp routes a key release
func (s *Simulation) KeyUp(k input.Key) {
	s.merger.KeyUp(k)
}

// JoystickMove sets the stick displacement; invalid input is logged and ignored
func (s *Simulation) JoystickMove(d mgl64.Vec2) {
	if err := s.merger.JoystickMove(d); err != nil {
		s.log.Debug().Err(err).Msg("joystick input ignored")
	}
}

// JoystickRelease recenters the stick
func (s *Simulation) JoystickRelease() {
	s.merger.JoystickRelease()
}

// Projector returns a perspective projector at the current camera pose
func (s *Simulation) Projector(width, height float64) camera.Perspective {
	return camera.Perspective{
		Pose:   s.state.Camera.Pose(),
		FOV:    s.fov,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
		Width:  width,
		Height: height,
	}
}

// PointerSelect casts a ray through p at (x, y) and enters player mode when it hits the vessel
// Returns whether a session started; invalid coordinates and disabled hit-testing
// return an error and leave state untouched
func (s *Simulation) PointerSelect(x, y float64, p camera.Projector) (bool, error) {
	if s.Mode() != core.ModeAutonomous {
		return false, nil
	}
	if s.picker == nil {
		s.log.Debug().Msg("select ignored, no hull attached")
		return false, ErrHitTestDisabled
	}
	ray, err := p.Ray(x, y)
	if err != nil {
		s.log.Debug().Err(err).Float64("x", x).Float64("y", y).Msg("select ignored")
		return false, fmt.Errorf("pointer select: %w", err)
	}
	id, ok := s.picker.Intersect(ray)
	if !ok || id != scene.EntityVessel {
		return false, nil
	}
	s.enterPlayer()
	return true, nil
}

// Exit ends the player session; no-op while autonomous
func (s *Simulation) Exit() bool {
	if s.Mode() != core.ModePlayer {
		return false
	}
	s.exitPlayer()
	return true
}

func (s *Simulation) enterPlayer() {
	st := &s.state
	if !st.Vessel.EnterPlayer() {
		return
	}
	s.merger.SetMode(core.ModePlayer)
	st.Fragments.Spawn(st.Field, st.Elapsed)
	st.Camera.Follow(s.preset)
	st.Camera.Update(st.Vessel.Transform, 0)
	if s.hullPicker != nil {
		s.hullPicker.Place(st.Vessel.Transform)
	}

	s.log.Info().Int("fragments", st.Fragments.Remaining()).Str("preset", s.presetName).Msg("player session started")
	s.bus.Emit(event.EventModeChanged, &event.ModeChangedPayload{From: core.ModeAutonomous, To: core.ModePlayer}, st.Frame)
	s.bus.Emit(event.EventSessionStarted, &event.SessionStartedPayload{
		Fragments: st.Fragments.Remaining(),
		Preset:    s.presetName,
	}, st.Frame)
	s.publishMetrics()
	s.bus.Dispatch()
}

func (s *Simulation) exitPlayer() {
	st := &s.state
	collected := st.Fragments.Count()
	if !st.Vessel.ExitPlayer() {
		return
	}
	s.merger.SetMode(core.ModeAutonomous)
	st.Fragments.Clear()
	st.Camera.Reset()
	if s.hullPicker != nil {
		s.hullPicker.Place(st.Vessel.Transform)
	}

	s.log.Info().Int("collected", collected).Msg("player session ended")
	s.bus.Emit(event.EventSessionEnded, &event.SessionEndedPayload{Collected: collected}, st.Frame)
	s.bus.Emit(event.EventModeChanged, &event.ModeChangedPayload{From: core.ModePlayer, To: core.ModeAutonomous}, st.Frame)
	s.publishMetrics()
	s.bus.Dispatch()
}

// AttachHull enables hit-testing with the default box proxy for h
func (s *Simulation) AttachHull(h scene.Hull) {
	hp := scene.NewHullPicker(h)
	hp.Place(s.state.Vessel.Transform)
	s.hullPicker = hp
	s.SetPicker(hp)
}

// SetPicker replaces the hit-test scene, nil disables hit-testing
func (s *Simulation) SetPicker(p scene.Picker) {
	if p == nil {
		s.picker = nil
		s.hullPicker = nil
		s.statHull.Store(false)
		return
	}
	if hp, ok := p.(*scene.HullPicker); !ok || hp != s.hullPicker {
		s.hullPicker = nil
	}
	s.picker = p
	s.statHull.Store(true)
	s.bus.Emit(event.EventHullAvailable, nil, s.state.Frame)
	s.bus.Dispatch()
}

// HitTestReady reports whether a picker is attached
func (s *Simulation) HitTestReady() bool {
	return s.picker != nil
}

// hullFailed records a load failure; the previous picker, if any, is dropped
func (s *Simulation) hullFailed(err error) error {
	wrapped := err
	if !errors.Is(err, ErrAssetUnavailable) {
		wrapped = fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
	}
	s.log.Warn().Err(wrapped).Msg("hull unavailable, hit-testing disabled")
	s.picker = nil
	s.hullPicker = nil
	s.statHull.Store(false)
	s.bus.Emit(event.EventHullUnavailable, &event.HullUnavailablePayload{Err: wrapped}, s.state.Frame)
	s.bus.Dispatch()
	return wrapped
}

func (s *Simulation) publishMetrics() {
	st := &s.state
	s.statCollected.Store(int64(st.Fragments.Count()))
	s.statRemaining.Store(int64(st.Fragments.Remaining()))
	s.statSpeed.Set(st.Vessel.Speed())
	s.statMode.Store(st.Vessel.Mode().String())
	s.statLost.Store(int64(s.bus.Overwritten()))
}
