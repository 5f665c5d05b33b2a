package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tidewake/camera"
	"github.com/lixenwraith/tidewake/collectible"
	"github.com/lixenwraith/tidewake/config"
	"github.com/lixenwraith/tidewake/event"
	"github.com/lixenwraith/tidewake/input"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/physics"
	"github.com/lixenwraith/tidewake/scene"
	"github.com/lixenwraith/tidewake/status"
	"github.com/lixenwraith/tidewake/vessel"
	"github.com/lixenwraith/tidewake/wave"
)

// Options wires a Simulation
// Zero Bus, Registry, Keys, and Field are replaced with fresh defaults
type Options struct {
	Vessel    vessel.Tuning
	Fragments collectible.Tuning
	Bounds    physics.Bounds
	Seed      uint64

	GridSegments   int
	GridSize       float64
	NormalInterval int
	Field          wave.Sampler

	Preset          camera.Preset
	PresetName      string
	CameraHome      camera.Pose
	AutoRotateSpeed float64
	YawDamping      float64
	FOV             float64

	Keys             *input.KeyTable
	JoystickRadius   float64
	JoystickDeadZone float64

	// Hull is attached at construction when set; nil leaves hit-testing disabled
	Hull *scene.Hull

	TickInterval time.Duration
	MaxDelta     float64

	Logger   zerolog.Logger
	Bus      *event.Bus
	Registry *status.Registry
}

// DefaultOptions uses parameter values throughout, with the default hull attached
func DefaultOptions() Options {
	hull := scene.DefaultHull()
	return Options{
		Vessel:    vessel.DefaultTuning(),
		Fragments: collectible.DefaultTuning(),
		Bounds:    physics.OceanBounds(),
		Seed:      parameter.DefaultSeed,

		GridSegments:   parameter.OceanGridSegments,
		GridSize:       parameter.OceanSize,
		NormalInterval: parameter.WaveNormalInterval,

		Preset:          camera.DesktopPreset(),
		PresetName:      "desktop",
		CameraHome:      camera.DefaultPose(),
		AutoRotateSpeed: parameter.CameraAutoRotateSpeed,
		YawDamping:      parameter.CameraYawDamping,
		FOV:             parameter.CameraFOV,

		JoystickRadius:   parameter.JoystickMaxRadius,
		JoystickDeadZone: parameter.JoystickDeadZone,

		Hull: &hull,

		TickInterval: parameter.FrameUpdateInterval,
		MaxDelta:     parameter.MaxFrameDelta,

		Logger: zerolog.Nop(),
	}
}

// OptionsFromConfig overlays a loaded config on DefaultOptions
func OptionsFromConfig(cfg *config.Config, log zerolog.Logger) (Options, error) {
	o := DefaultOptions()
	o.Logger = log

	o.GridSegments = cfg.Wave.GridSegments
	o.GridSize = cfg.Wave.Size
	o.NormalInterval = cfg.Wave.NormalInterval

	o.Vessel.PathSpeed = cfg.Vessel.PathSpeed
	o.Vessel.Acceleration = cfg.Vessel.Acceleration
	o.Vessel.Friction = cfg.Vessel.Friction
	o.Vessel.MaxSpeed = cfg.Vessel.MaxSpeed
	o.Vessel.RotationSpeed = cfg.Vessel.RotationSpeed
	o.Vessel.AngularFriction = cfg.Vessel.AngularFriction
	o.Vessel.Restitution = cfg.Vessel.Restitution
	o.Vessel.PlayerScaleFactor = cfg.Vessel.PlayerScaleFactor

	preset, err := camera.PresetByName(cfg.Camera.Preset)
	if err != nil {
		return Options{}, fmt.Errorf("camera config: %w", err)
	}
	o.Preset = preset
	o.PresetName = cfg.Camera.Preset
	o.AutoRotateSpeed = cfg.Camera.AutoRotateSpeed
	o.FOV = cfg.Camera.FOV

	o.Fragments.Count = cfg.Collectible.Count
	o.Fragments.PickupRadius = cfg.Collectible.PickupRadius

	keys, err := input.LoadBindings(cfg.Input.Bindings)
	if err != nil {
		return Options{}, fmt.Errorf("input config: %w", err)
	}
	o.Keys = keys
	o.JoystickRadius = cfg.Input.JoystickRadius
	o.JoystickDeadZone = cfg.Input.JoystickDeadZone

	o.TickInterval = cfg.Engine.TickInterval
	o.MaxDelta = cfg.Engine.MaxDelta
	o.Seed = cfg.Engine.Seed
	return o, nil
}
