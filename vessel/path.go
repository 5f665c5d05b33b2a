package vessel

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/vmath"
)

// AutonomousPath is a ping-pong leg between two waypoints
// Progress eases from 0 at Phase 0 to 1 at Phase π
type AutonomousPath struct {
	From  mgl64.Vec3
	To    mgl64.Vec3
	Phase float64
	Speed float64
}

// Progress returns (sin(phase - π/2) + 1) / 2, clamped to [0, 1]
func (p *AutonomousPath) Progress() float64 {
	return vmath.Clamp01((math.Sin(p.Phase-math.Pi/2) + 1) / 2)
}

// Point returns the (x, z) interpolation at the current progress, Y taken from From
func (p *AutonomousPath) Point() mgl64.Vec3 {
	t := p.Progress()
	return mgl64.Vec3{
		vmath.Lerp(p.From.X(), p.To.X(), t),
		p.From.Y(),
		vmath.Lerp(p.From.Z(), p.To.Z(), t),
	}
}

// Heading returns the yaw facing from From toward To
func (p *AutonomousPath) Heading() float64 {
	d := p.To.Sub(p.From)
	return math.Atan2(d.X(), d.Z())
}

// Advance steps the phase by Speed
// When the leg completes the endpoints swap, phase resets, and turned is true
// The returned point is where the vessel stands after the step
func (p *AutonomousPath) Advance() (point mgl64.Vec3, turned bool) {
	p.Phase += p.Speed
	if p.Phase >= math.Pi {
		arrived := mgl64.Vec3{p.To.X(), p.From.Y(), p.To.Z()}
		p.From, p.To = p.To, p.From
		p.Phase = 0
		return arrived, true
	}
	return p.Point(), false
}
