package physics

import "github.com/go-gl/mathgl/mgl64"

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *mgl64.Vec2, maxSpeed float64) bool {
	mag := vel.Len()
	if mag <= maxSpeed || mag == 0 {
		return false
	}
	*vel = vel.Mul(maxSpeed / mag)
	return true
}
