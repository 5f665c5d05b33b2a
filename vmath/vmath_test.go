package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 0.0, Clamp01(-0.1))
}

func TestLerpInvLerp(t *testing.T) {
	assert.InDelta(t, 0.0, Lerp(-10, 10, 0.5), 1e-12)
	assert.InDelta(t, 0.75, InvLerp(0, 4, 3), 1e-12)
	assert.Equal(t, 0.0, InvLerp(2, 2, 5))
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.0, WrapAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, math.Pi, WrapAngle(3*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-9)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1, 2, 3))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(-1)))
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		va, vb := a.RangeF(-3, 3), b.RangeF(-3, 3)
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, -3.0)
		assert.Less(t, va, 3.0)
	}
}

func TestRayIntersectAABB(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 10, 0}, Dir: mgl64.Vec3{0, -1, 0}}
	d, ok := r.IntersectAABB(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	assert.True(t, ok)
	assert.InDelta(t, 9.0, d, 1e-9)

	miss := Ray{Origin: mgl64.Vec3{5, 10, 0}, Dir: mgl64.Vec3{0, -1, 0}}
	_, ok = miss.IntersectAABB(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	assert.False(t, ok)

	behind := Ray{Origin: mgl64.Vec3{0, 10, 0}, Dir: mgl64.Vec3{0, 1, 0}}
	_, ok = behind.IntersectAABB(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	assert.False(t, ok)
}

func TestRayTransform(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}}
	moved := r.Transform(mgl64.Translate3D(0, 5, 0))
	assert.InDelta(t, 5.0, moved.Origin.Y(), 1e-12)
	assert.InDelta(t, 1.0, moved.Dir.X(), 1e-12)
}

func TestRayIntersectPlaneY(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{0, 10, 0}, Dir: mgl64.Vec3{0, -1, 0}}
	p, ok := r.IntersectPlaneY(2)
	assert.True(t, ok)
	assert.InDelta(t, 2.0, p.Y(), 1e-12)

	_, ok = Ray{Origin: mgl64.Vec3{0, 10, 0}, Dir: mgl64.Vec3{1, 0, 0}}.IntersectPlaneY(2)
	assert.False(t, ok)
}
