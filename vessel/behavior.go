package vessel

import (
	"math"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/physics"
	"github.com/lixenwraith/tidewake/vmath"
	"github.com/lixenwraith/tidewake/wave"
)

// Behavior is the vessel's control variant
// Exactly two implementations exist: *Autonomous and *Piloted
type Behavior interface {
	Mode() core.Mode
	advance(v *Vessel, in input.State, field wave.Sampler, t, dt float64)
}

// Autonomous cruises a scripted ping-pong path, ignoring input
type Autonomous struct {
	Path AutonomousPath
}

func (*Autonomous) Mode() core.Mode { return core.ModeAutonomous }

func (a *Autonomous) advance(v *Vessel, _ input.State, field wave.Sampler, t, _ float64) {
	tn := &v.tuning
	p, turned := a.Path.Advance()
	if turned {
		v.Yaw = vmath.WrapAngle(v.Yaw + parameter.VesselTurnAround)
	}
	v.Position[0] = p.X()
	v.Position[2] = p.Z()
	v.Position[1] = p.Y() + field.Height(p.X(), p.Z(), t)*tn.WaveInfluence + tn.BobAmp*math.Sin(t*tn.BobFreq)
	v.Roll = tn.RollAmp * math.Sin(t*tn.RollFreq)
	v.Pitch = tn.PitchAmp * math.Sin(t*tn.PitchFreq)
}

// Piloted integrates player input with friction, speed cap, and bounds
type Piloted struct {
	core.Kinetic
}

func (*Piloted) Mode() core.Mode { return core.ModePlayer }

func (p *Piloted) advance(v *Vessel, in input.State, field wave.Sampler, t, dt float64) {
	tn := &v.tuning
	k := &p.Kinetic

	if in.Left {
		k.AngularVelocity += tn.RotationSpeed * dt
	}
	if in.Right {
		k.AngularVelocity -= tn.RotationSpeed * dt
	}
	physics.DampAngular(k, tn.AngularFriction)
	v.Yaw = vmath.WrapAngle(v.Yaw + k.AngularVelocity)

	fwd := physics.Forward(v.Yaw)
	if in.Up {
		physics.ApplyImpulse(k, fwd.Mul(tn.Acceleration*dt*60))
	}
	if in.Down {
		physics.ApplyImpulse(k, fwd.Mul(tn.ReverseFactor*tn.Acceleration*dt*60))
	}
	physics.Damp(k, tn.Friction)
	physics.CapSpeed(&k.Velocity, tn.MaxSpeed)

	physics.Integrate(&v.Position, k)
	physics.ReflectBounds(&v.Position, k, tn.Bounds, tn.Restitution)

	x, z := v.Position.X(), v.Position.Z()
	v.Position[1] = tn.BaseHeight + field.Height(x, z, t)*tn.WaveInfluence + tn.BobAmp*math.Sin(t*tn.BobFreq)
	v.Roll = tn.RollAmp*math.Sin(t*tn.RollFreq) + k.AngularVelocity*tn.RollCoupling
	v.Pitch = tn.PitchAmp*math.Sin(t*tn.PitchFreq) - k.Velocity.Len()*tn.PitchCoupling
}
