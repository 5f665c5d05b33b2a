package engine

import (
	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/collectible"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/vessel"
	"github.com/lixenwraith/tidewake/wave"
)

// State is everything a tick mutates
// It is owned by one goroutine and passed explicitly into Step
type State struct {
	Field     wave.Sampler
	Grid      *wave.Grid
	Vessel    *vessel.Vessel
	Fragments *collectible.Manager
	Camera    *camera.Controller

	Frame   int64
	Elapsed float64
}

// StepResult reports what a tick changed beyond State
type StepResult struct {
	Collected        int
	NormalsRefreshed bool
}

// Step advances one tick in fixed order: wave grid, vessel, fragments, camera
// Fragments only advance under player control
func Step(s *State, in input.State, t, dt float64) StepResult {
	var res StepResult
	s.Frame++
	s.Elapsed = t

	res.NormalsRefreshed = s.Grid.Update(t)
	s.Vessel.Advance(in, s.Field, t, dt)
	if s.Vessel.Mode() == core.ModePlayer {
		res.Collected = s.Fragments.Advance(s.Field, t, s.Vessel.Position)
	}
	s.Camera.Update(s.Vessel.Transform, dt)
	return res
}
