package collectible

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/physics"
	"github.com/lixenwraith/tidewake/vmath"
	"github.com/lixenwraith/tidewake/wave"
)

// DefaultTuning builds Tuning from parameter
func DefaultTuning() Tuning {
	return Tuning{
		Count:         parameter.FragmentCount,
		PickupRadius:  parameter.FragmentPickupRadius,
		HoverOffset:   parameter.FragmentHoverOffset,
		WaveInfluence: parameter.FragmentWaveInfluence,
		RotationMin:   parameter.FragmentRotationMin,
		RotationMax:   parameter.FragmentRotationMax,
		RollStep:      parameter.FragmentRollStep,
		SpawnInset:    parameter.FragmentSpawnInset,
	}
}

// Manager owns the live fragment set and the session's collected count
// Collected fragments are removed from the set, never revisited
type Manager struct {
	tuning    Tuning
	bounds    physics.Bounds
	rng       *vmath.FastRand
	fragments []Fragment
	count     int
}

// NewManager creates an empty manager
// Spawn positions are deterministic for a given seed
func NewManager(tuning Tuning, bounds physics.Bounds, seed uint64) *Manager {
	return &Manager{
		tuning: tuning,
		bounds: bounds.Inset(tuning.SpawnInset),
		rng:    vmath.NewFastRand(seed),
	}
}

// Spawn replaces the set with a fresh batch and zeroes the count
func (m *Manager) Spawn(field wave.Sampler, t float64) {
	m.fragments = m.fragments[:0]
	m.count = 0
	for i := 0; i < m.tuning.Count; i++ {
		x := m.rng.RangeF(m.bounds.MinX, m.bounds.MaxX)
		z := m.rng.RangeF(m.bounds.MinZ, m.bounds.MaxZ)
		m.fragments = append(m.fragments, Fragment{
			Position:      mgl64.Vec3{x, m.hover(field, x, z, t), z},
			RotationSpeed: m.rng.RangeF(m.tuning.RotationMin, m.tuning.RotationMax),
			Yaw:           m.rng.RangeF(0, 2*math.Pi),
		})
	}
}

// Advance spins and re-floats every fragment, then collects those within
// PickupRadius of the vessel
// Returns the number collected this tick
func (m *Manager) Advance(field wave.Sampler, t float64, vessel mgl64.Vec3) int {
	collected := 0
	kept := m.fragments[:0]
	for i := range m.fragments {
		f := m.fragments[i]
		f.Yaw = vmath.WrapAngle(f.Yaw + f.RotationSpeed)
		f.Roll = vmath.WrapAngle(f.Roll + m.tuning.RollStep)
		f.Position[1] = m.hover(field, f.Position.X(), f.Position.Z(), t)

		if !f.Collected && physics.WithinRadius(f.Position, vessel, m.tuning.PickupRadius) {
			f.Collected = true
			collected++
			continue
		}
		kept = append(kept, f)
	}
	m.fragments = kept
	m.count += collected
	return collected
}

// Clear discards all fragments and zeroes the count
func (m *Manager) Clear() {
	m.fragments = m.fragments[:0]
	m.count = 0
}

// Count returns fragments collected since the last Spawn or Clear
func (m *Manager) Count() int {
	return m.count
}

// Remaining returns the number of uncollected fragments
func (m *Manager) Remaining() int {
	return len(m.fragments)
}

// Fragments returns a copy of the live set
func (m *Manager) Fragments() []Fragment {
	out := make([]Fragment, len(m.fragments))
	copy(out, m.fragments)
	return out
}

func (m *Manager) hover(field wave.Sampler, x, z, t float64) float64 {
	return field.Height(x, z, t)*m.tuning.WaveInfluence + m.tuning.HoverOffset
}
