// Package collectible manages the floating fragments of a player session.
package collectible

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Fragment is a rotating pickup riding the wave surface
type Fragment struct {
	Position      mgl64.Vec3
	RotationSpeed float64
	Yaw           float64
	Roll          float64
	Collected     bool
}

// Tuning holds fragment spawn and motion constants
type Tuning struct {
	Count         int
	PickupRadius  float64
	HoverOffset   float64
	WaveInfluence float64
	RotationMin   float64
	RotationMax   float64
	RollStep      float64
	SpawnInset    float64
}
