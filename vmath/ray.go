package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in world space; Dir is expected to be unit length
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Transform maps the ray through m, re-normalizing the direction
// Distances along the returned ray are in the target space
func (r Ray) Transform(m mgl64.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1)).Vec3()
	d := m.Mul4x1(r.Dir.Vec4(0)).Vec3()
	if l := d.Len(); l > 0 {
		d = d.Mul(1 / l)
	}
	return Ray{Origin: o, Dir: d}
}

// IntersectAABB runs the slab test against an axis-aligned box
// Returns the entry distance (0 when the origin is inside) and whether it hits
func (r Ray) IntersectAABB(min, max mgl64.Vec3) (float64, bool) {
	tMin := 0.0
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Dir[i]
		if math.Abs(d) < 1e-12 {
			if o < min[i] || o > max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (min[i] - o) * inv
		t2 := (max[i] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// IntersectPlaneY returns where the ray crosses the horizontal plane y = h
func (r Ray) IntersectPlaneY(h float64) (mgl64.Vec3, bool) {
	if math.Abs(r.Dir.Y()) < 1e-12 {
		return mgl64.Vec3{}, false
	}
	t := (h - r.Origin.Y()) / r.Dir.Y()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return r.At(t), true
}
