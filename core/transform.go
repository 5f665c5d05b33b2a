package core

import "github.com/go-gl/mathgl/mgl64"

// Transform is the renderer-facing pose of a simulated entity
// Angles are radians; Yaw rotates about +Y, Roll about the hull's forward axis
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Roll     float64
	Pitch    float64
	Scale    float64
}

// Matrix returns the model matrix T * Ry * Rx(pitch) * Rz(roll) * S
func (t Transform) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl64.HomogRotate3DY(t.Yaw))
	m = m.Mul4(mgl64.HomogRotate3DX(t.Pitch))
	m = m.Mul4(mgl64.HomogRotate3DZ(t.Roll))
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return m.Mul4(mgl64.Scale3D(s, s, s))
}
