package parameter

import "math"

// Autonomous cruise
const (
	// VesselPathSpeed is the phase advance per tick along a leg
	VesselPathSpeed = 0.004

	// VesselWaveInfluence scales wave height into vessel vertical offset
	VesselWaveInfluence = 0.35

	VesselBobAmp  = 0.15
	VesselBobFreq = 1.6

	VesselRollAmp   = 0.05
	VesselRollFreq  = 0.8
	VesselPitchAmp  = 0.03
	VesselPitchFreq = 0.6
)

// Waypoints of the initial ping-pong leg, inside the default camera's view
var (
	VesselPathFrom = [3]float64{-25, 1.2, 6}
	VesselPathTo   = [3]float64{25, 1.2, -6}
)

// Player control
const (
	// VesselAcceleration is applied as forward*accel*dt*60 per tick
	VesselAcceleration = 0.012

	// VesselReverseFactor scales acceleration when reversing
	VesselReverseFactor = -0.5

	// VesselFriction is the per-tick multiplicative velocity decay
	VesselFriction = 0.97

	// VesselMaxSpeed caps |velocity| in units per tick
	VesselMaxSpeed = 0.6

	// VesselRotationSpeed is angular acceleration in rad per tick per second
	VesselRotationSpeed = 0.18

	// VesselAngularFriction is the per-tick multiplicative yaw-rate decay
	VesselAngularFriction = 0.9

	// VesselBaseHeight is the waterline height while piloted
	VesselBaseHeight = 1.2

	// VesselRollCoupling banks the hull into turns
	VesselRollCoupling = 3.0

	// VesselPitchCoupling dips the bow under speed
	VesselPitchCoupling = 0.08

	// VesselRestitution is the fraction of axis speed kept, reversed, on a bounds clamp
	VesselRestitution = 0.5
)

// Scale
const (
	VesselBaseScale         = 1.0
	VesselPlayerScaleFactor = 0.6
)

// Collision proxy half extents in hull-local space (x beam, y height, z length)
var VesselHullHalfExtents = [3]float64{1.6, 1.2, 4.0}

// VesselTurnAround is the yaw added at the end of each autonomous leg
const VesselTurnAround = math.Pi
