package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/collectible"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/wave"
)

// JoystickView is the stick state a renderer overlays
type JoystickView struct {
	Active       bool
	Displacement mgl64.Vec2
	MaxRadius    float64
}

// Frame is the renderer-facing view of one tick
// Wave is shared with the simulation: read it before the next Tick and never write it
type Frame struct {
	Number  int64
	Elapsed float64
	Mode    core.Mode

	Wave *wave.Grid

	Vessel      core.Transform
	VesselSpeed float64

	Camera     camera.Pose
	CameraMode camera.Mode

	Fragments []collectible.Fragment
	Collected int
	Remaining int

	Joystick     JoystickView
	HitTestReady bool
}

// Frame snapshots the state for rendering; Fragments is a copy
func (s *Simulation) Frame() Frame {
	st := &s.state
	js := s.merger.Joystick()
	return Frame{
		Number:      st.Frame,
		Elapsed:     st.Elapsed,
		Mode:        st.Vessel.Mode(),
		Wave:        st.Grid,
		Vessel:      st.Vessel.Transform,
		VesselSpeed: st.Vessel.Speed(),
		Camera:      st.Camera.Pose(),
		CameraMode:  st.Camera.Mode(),
		Fragments:   st.Fragments.Fragments(),
		Collected:   st.Fragments.Count(),
		Remaining:   st.Fragments.Remaining(),
		Joystick: JoystickView{
			Active:       js.Active,
			Displacement: js.Displacement,
			MaxRadius:    js.MaxRadius,
		},
		HitTestReady: s.picker != nil,
	}
}
