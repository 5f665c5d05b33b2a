package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/vmath"
)

func down(x, z float64) vmath.Ray {
	return vmath.Ray{Origin: mgl64.Vec3{x, 100, z}, Dir: mgl64.Vec3{0, -1, 0}}
}

func TestHullPickerHitsAtTransform(t *testing.T) {
	p := NewHullPicker(Hull{HalfExtents: mgl64.Vec3{1, 1, 4}})
	p.Place(core.Transform{Position: mgl64.Vec3{20, 0, -10}, Scale: 1})

	id, ok := p.Intersect(down(20, -7))
	assert.True(t, ok)
	assert.Equal(t, EntityVessel, id)

	id, ok = p.Intersect(down(0, 0))
	assert.False(t, ok)
	assert.Equal(t, EntityNone, id)
}

func TestHullPickerFollowsYaw(t *testing.T) {
	p := NewHullPicker(Hull{HalfExtents: mgl64.Vec3{1, 1, 4}})
	p.Place(core.Transform{Scale: 1})
	_, ok := p.Intersect(down(3, 0))
	assert.False(t, ok)

	p.Place(core.Transform{Yaw: math.Pi / 2, Scale: 1})
	_, ok = p.Intersect(down(3, 0))
	assert.True(t, ok)
	_, ok = p.Intersect(down(0, 3))
	assert.False(t, ok)
}

func TestHullPickerScales(t *testing.T) {
	p := NewHullPicker(Hull{HalfExtents: mgl64.Vec3{1, 1, 4}})
	p.Place(core.Transform{Scale: 0.5})
	_, ok := p.Intersect(down(0, 3))
	assert.False(t, ok)
	_, ok = p.Intersect(down(0, 1.5))
	assert.True(t, ok)
}

func TestHullPickerRayFromSide(t *testing.T) {
	p := NewHullPicker(DefaultHull())
	r := vmath.Ray{Origin: mgl64.Vec3{-50, 0, 0}, Dir: mgl64.Vec3{1, 0, 0}}
	_, ok := p.Intersect(r)
	assert.True(t, ok)

	r.Dir = mgl64.Vec3{-1, 0, 0}
	_, ok = p.Intersect(r)
	assert.False(t, ok)
}
