package bridge

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/engine"
	"github.com/lixenwraith/tidewake/wave"
)

// Snapshot is the per-frame state a remote renderer draws from
type Snapshot struct {
	Frame        int64           `json:"frame"`
	Elapsed      float64         `json:"elapsed"`
	Mode         string          `json:"mode"`
	Vessel       VesselState     `json:"vessel"`
	Camera       CameraState     `json:"camera"`
	Wave         WaveState       `json:"wave"`
	Fragments    []FragmentState `json:"fragments"`
	Collected    int             `json:"collected"`
	Remaining    int             `json:"remaining"`
	Joystick     *JoystickState  `json:"joystick,omitempty"`
	HitTestReady bool            `json:"hitTestReady"`
}

type VesselState struct {
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Roll     float64    `json:"roll"`
	Pitch    float64    `json:"pitch"`
	Scale    float64    `json:"scale"`
	Speed    float64    `json:"speed"`
}

type CameraState struct {
	Mode     string     `json:"mode"`
	Position [3]float64 `json:"position"`
	LookAt   [3]float64 `json:"lookAt"`
}

// WaveState holds heights on a Side x Side lattice, row-major by z
// Vertex (0, 0) sits at world (Origin[0], Origin[1]) and the lattice spans Size along x and z
// Size falls short of the grid when the stride does not divide the segment count
type WaveState struct {
	Side    int        `json:"side"`
	Size    float64    `json:"size"`
	Origin  [2]float64 `json:"origin"`
	Heights []float32  `json:"heights"`
}

type FragmentState struct {
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Roll     float64    `json:"roll"`
}

type JoystickState struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	MaxRadius float64 `json:"maxRadius"`
}

// NewSnapshot converts a frame, sampling every stride-th wave vertex
func NewSnapshot(f engine.Frame, stride int) Snapshot {
	s := Snapshot{
		Frame:   f.Number,
		Elapsed: f.Elapsed,
		Mode:    f.Mode.String(),
		Vessel: VesselState{
			Position: vec3(f.Vessel.Position),
			Yaw:      f.Vessel.Yaw,
			Roll:     f.Vessel.Roll,
			Pitch:    f.Vessel.Pitch,
			Scale:    f.Vessel.Scale,
			Speed:    f.VesselSpeed,
		},
		Camera: CameraState{
			Mode:     f.CameraMode.String(),
			Position: vec3(f.Camera.Position),
			LookAt:   vec3(f.Camera.LookAt),
		},
		Wave:         downsample(f.Wave, stride),
		Fragments:    make([]FragmentState, 0, len(f.Fragments)),
		Collected:    f.Collected,
		Remaining:    f.Remaining,
		HitTestReady: f.HitTestReady,
	}
	for _, fr := range f.Fragments {
		if fr.Collected {
			continue
		}
		s.Fragments = append(s.Fragments, FragmentState{Position: vec3(fr.Position), Yaw: fr.Yaw, Roll: fr.Roll})
	}
	if f.Joystick.Active {
		s.Joystick = &JoystickState{
			X:         f.Joystick.Displacement.X(),
			Y:         f.Joystick.Displacement.Y(),
			MaxRadius: f.Joystick.MaxRadius,
		}
	}
	return s
}

// SampledSide is the lattice edge length after sampling every stride-th vertex
func SampledSide(gridSide, stride int) int {
	if stride < 1 {
		stride = 1
	}
	if gridSide < 1 {
		return 0
	}
	return (gridSide-1)/stride + 1
}

func downsample(g *wave.Grid, stride int) WaveState {
	if g == nil {
		return WaveState{}
	}
	if stride < 1 {
		stride = 1
	}
	side := SampledSide(g.Side(), stride)
	x0, z0 := g.Vertex(0, 0)
	ws := WaveState{
		Side:    side,
		Size:    float64(side-1) * float64(stride) * g.Step,
		Origin:  [2]float64{x0, z0},
		Heights: make([]float32, 0, side*side),
	}
	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			ws.Heights = append(ws.Heights, float32(g.Heights[g.Index(i*stride, j*stride)]))
		}
	}
	return ws
}

func vec3(v mgl64.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}
