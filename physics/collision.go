package physics

import "github.com/go-gl/mathgl/mgl64"

// WithinRadius reports whether a and b are strictly closer than radius (3D Euclidean)
func WithinRadius(a, b mgl64.Vec3, radius float64) bool {
	return a.Sub(b).LenSqr() < radius*radius
}
