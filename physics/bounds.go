package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
)

// Bounds is the axis-aligned ocean rectangle on the (x, z) plane
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// OceanBounds returns the configured playable area
func OceanBounds() Bounds {
	return Bounds{
		MinX: parameter.OceanMinX, MaxX: parameter.OceanMaxX,
		MinZ: parameter.OceanMinZ, MaxZ: parameter.OceanMaxZ,
	}
}

// Contains reports whether (x, z) lies inside, edges inclusive
func (b Bounds) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

// Inset shrinks the rectangle by margin on every side, collapsing to the center if too small
func (b Bounds) Inset(margin float64) Bounds {
	out := Bounds{b.MinX + margin, b.MaxX - margin, b.MinZ + margin, b.MaxZ - margin}
	if out.MinX > out.MaxX {
		c := (b.MinX + b.MaxX) / 2
		out.MinX, out.MaxX = c, c
	}
	if out.MinZ > out.MaxZ {
		c := (b.MinZ + b.MaxZ) / 2
		out.MinZ, out.MaxZ = c, c
	}
	return out
}

// ReflectAxis clamps pos into [lo, hi]; on clamp the velocity is reversed and scaled by restitution
// Returns true if a clamp occurred
func ReflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		*vel = -*vel * restitution
		return true
	}
	if *pos > hi {
		*pos = hi
		*vel = -*vel * restitution
		return true
	}
	return false
}

// ReflectBounds applies ReflectAxis on x and z, returns true if any clamp occurred
func ReflectBounds(pos *mgl64.Vec3, k *core.Kinetic, b Bounds, restitution float64) bool {
	rx := ReflectAxis(&pos[0], &k.Velocity[0], b.MinX, b.MaxX, restitution)
	rz := ReflectAxis(&pos[2], &k.Velocity[1], b.MinZ, b.MaxZ, restitution)
	return rx || rz
}
