package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
)

// Forward returns the unit heading on the (x, z) plane for a yaw angle
// Yaw 0 faces +Z; positive yaw turns toward +X
func Forward(yaw float64) mgl64.Vec2 {
	return mgl64.Vec2{math.Sin(yaw), math.Cos(yaw)}
}

// Forward3 lifts Forward onto the horizontal plane
func Forward3(yaw float64) mgl64.Vec3 {
	f := Forward(yaw)
	return mgl64.Vec3{f.X(), 0, f.Y()}
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, dv mgl64.Vec2) {
	k.Velocity = k.Velocity.Add(dv)
}

// Damp applies per-tick multiplicative friction to linear velocity
func Damp(k *core.Kinetic, friction float64) {
	k.Velocity = k.Velocity.Mul(friction)
}

// DampAngular applies per-tick multiplicative friction to the yaw rate
func DampAngular(k *core.Kinetic, angularFriction float64) {
	k.AngularVelocity *= angularFriction
}

// Integrate advances a position by one tick of planar velocity
func Integrate(pos *mgl64.Vec3, k *core.Kinetic) {
	pos[0] += k.Velocity.X()
	pos[2] += k.Velocity.Y()
}
