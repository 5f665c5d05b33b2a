// Package vessel is the single simulated boat: a two-state machine over
// a scripted cruise and player-driven planar physics.
package vessel

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/wave"
)

// Vessel owns pose and the active Behavior
type Vessel struct {
	core.Transform

	behavior Behavior
	tuning   Tuning
}

// New creates the vessel cruising its initial leg
func New(tuning Tuning) *Vessel {
	path := AutonomousPath{From: tuning.PathFrom, To: tuning.PathTo, Speed: tuning.PathSpeed}
	v := &Vessel{
		behavior: &Autonomous{Path: path},
		tuning:   tuning,
	}
	v.Position = path.Point()
	v.Yaw = path.Heading()
	v.Scale = tuning.BaseScale
	return v
}

// Mode returns the active control mode
func (v *Vessel) Mode() core.Mode {
	return v.behavior.Mode()
}

// Behavior exposes the active variant for inspection
func (v *Vessel) Behavior() Behavior {
	return v.behavior
}

// Tuning returns the constants in use
func (v *Vessel) Tuning() Tuning {
	return v.tuning
}

// Path returns the cruise leg, nil under player control
func (v *Vessel) Path() *AutonomousPath {
	if a, ok := v.behavior.(*Autonomous); ok {
		return &a.Path
	}
	return nil
}

// Kinetic returns planar motion, zero while autonomous
func (v *Vessel) Kinetic() core.Kinetic {
	if p, ok := v.behavior.(*Piloted); ok {
		return p.Kinetic
	}
	return core.Kinetic{}
}

// SetKinetic overrides planar motion under player control, no-op otherwise
func (v *Vessel) SetKinetic(k core.Kinetic) {
	if p, ok := v.behavior.(*Piloted); ok {
		p.Kinetic = k
	}
}

// Speed returns |velocity|
func (v *Vessel) Speed() float64 {
	k := v.Kinetic()
	return k.Velocity.Len()
}

// Advance runs one tick of the active behavior
func (v *Vessel) Advance(in input.State, field wave.Sampler, t, dt float64) {
	v.behavior.advance(v, in, field, t, dt)
}

// EnterPlayer switches to player control with motion zeroed and the hull shrunk
// Returns false if already under player control
func (v *Vessel) EnterPlayer() bool {
	if v.behavior.Mode() != core.ModeAutonomous {
		return false
	}
	v.behavior = &Piloted{}
	v.Scale = v.tuning.BaseScale * v.tuning.PlayerScaleFactor
	return true
}

// ExitPlayer returns to cruising with motion zeroed and scale restored
// The new leg starts where the player left the hull and heads for the original target
// Returns false if not under player control
func (v *Vessel) ExitPlayer() bool {
	if v.behavior.Mode() != core.ModePlayer {
		return false
	}
	from := mgl64.Vec3{v.Position.X(), v.tuning.PathFrom.Y(), v.Position.Z()}
	path := AutonomousPath{From: from, To: v.tuning.PathTo, Speed: v.tuning.PathSpeed}
	if from.Sub(path.To).Len() < 1e-9 {
		path.To = v.tuning.PathFrom
	}
	v.behavior = &Autonomous{Path: path}
	v.Yaw = path.Heading()
	v.Scale = v.tuning.BaseScale
	return true
}
