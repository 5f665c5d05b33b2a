package core

import "github.com/go-gl/mathgl/mgl64"

// Kinetic is planar motion state on the ocean surface
// Velocity is in world units per tick on the (x, z) plane
type Kinetic struct {
	Velocity        mgl64.Vec2
	AngularVelocity float64
}
