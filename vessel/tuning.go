package vessel

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/physics"
)

// Tuning holds every constant the vessel integrates with
type Tuning struct {
	// Autonomous cruise
	PathFrom      mgl64.Vec3
	PathTo        mgl64.Vec3
	PathSpeed     float64
	WaveInfluence float64
	BobAmp        float64
	BobFreq       float64
	RollAmp       float64
	RollFreq      float64
	PitchAmp      float64
	PitchFreq     float64

	// Player control
	Acceleration    float64
	ReverseFactor   float64
	Friction        float64
	MaxSpeed        float64
	RotationSpeed   float64
	AngularFriction float64
	BaseHeight      float64
	RollCoupling    float64
	PitchCoupling   float64
	Restitution     float64
	Bounds          physics.Bounds

	BaseScale         float64
	PlayerScaleFactor float64
}

// DefaultTuning builds Tuning from parameter
func DefaultTuning() Tuning {
	return Tuning{
		PathFrom:      mgl64.Vec3(parameter.VesselPathFrom),
		PathTo:        mgl64.Vec3(parameter.VesselPathTo),
		PathSpeed:     parameter.VesselPathSpeed,
		WaveInfluence: parameter.VesselWaveInfluence,
		BobAmp:        parameter.VesselBobAmp,
		BobFreq:       parameter.VesselBobFreq,
		RollAmp:       parameter.VesselRollAmp,
		RollFreq:      parameter.VesselRollFreq,
		PitchAmp:      parameter.VesselPitchAmp,
		PitchFreq:     parameter.VesselPitchFreq,

		Acceleration:    parameter.VesselAcceleration,
		ReverseFactor:   parameter.VesselReverseFactor,
		Friction:        parameter.VesselFriction,
		MaxSpeed:        parameter.VesselMaxSpeed,
		RotationSpeed:   parameter.VesselRotationSpeed,
		AngularFriction: parameter.VesselAngularFriction,
		BaseHeight:      parameter.VesselBaseHeight,
		RollCoupling:    parameter.VesselRollCoupling,
		PitchCoupling:   parameter.VesselPitchCoupling,
		Restitution:     parameter.VesselRestitution,
		Bounds:          physics.OceanBounds(),

		BaseScale:         parameter.VesselBaseScale,
		PlayerScaleFactor: parameter.VesselPlayerScaleFactor,
	}
}
