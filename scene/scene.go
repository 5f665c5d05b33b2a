// Package scene resolves pointer rays against pickable world objects.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/vmath"
)

// EntityID names a pickable object
type EntityID uint8

const (
	EntityNone EntityID = iota
	EntityVessel
)

func (e EntityID) String() string {
	switch e {
	case EntityVessel:
		return "vessel"
	default:
		return "none"
	}
}

// Picker answers which entity, if any, a world ray hits first
type Picker interface {
	Intersect(r vmath.Ray) (EntityID, bool)
}

// Hull is the collision proxy of the vessel, a box in model space
type Hull struct {
	HalfExtents mgl64.Vec3
}

// DefaultHull uses parameter extents
func DefaultHull() Hull {
	return Hull{HalfExtents: mgl64.Vec3(parameter.VesselHullHalfExtents)}
}

// HullPicker tests rays against a Hull placed by a transform
// The box rotates and scales with the transform
type HullPicker struct {
	hull      Hull
	transform core.Transform
	inverse   mgl64.Mat4
}

func NewHullPicker(h Hull) *HullPicker {
	p := &HullPicker{hull: h}
	p.Place(core.Transform{Scale: 1})
	return p
}

// Place moves the hull, typically once per tick from the vessel transform
func (p *HullPicker) Place(t core.Transform) {
	p.transform = t
	p.inverse = t.Matrix().Inv()
}

func (p *HullPicker) Transform() core.Transform {
	return p.transform
}

func (p *HullPicker) Intersect(r vmath.Ray) (EntityID, bool) {
	local := r.Transform(p.inverse)
	he := p.hull.HalfExtents
	if _, ok := local.IntersectAABB(he.Mul(-1), he); ok {
		return EntityVessel, true
	}
	return EntityNone, false
}
