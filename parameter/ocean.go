package parameter

import "math"

// Ocean plane extents, vessel and fragments are confined to this rectangle
const (
	OceanMinX = -90.0
	OceanMaxX = 90.0
	OceanMinZ = -90.0
	OceanMaxZ = 90.0

	// OceanSize is the edge length of the rendered wave plane
	OceanSize = 200.0

	// OceanGridSegments is the number of quads per edge of the sampling grid
	OceanGridSegments = 96
)

// Wave composition
const (
	// WaveWindAngle orients the primary rolling wave (radians from +X)
	WaveWindAngle = math.Pi / 5

	WavePrimaryAmp      = 1.0
	WavePrimarySpatial  = 0.08
	WavePrimaryTemporal = 0.9
	WaveCrossAmp        = 0.5
	WaveCrossSpatial    = 0.12
	WaveCrossTemporal   = 1.3
	WaveSwellAmp        = 0.4
	WaveSwellSpatial    = 0.02
	WaveSwellTemporal   = 0.35
	WaveChopAmp         = 0.15
	WaveChopSpatialX1   = 0.45
	WaveChopSpatialZ1   = 0.3
	WaveChopTemporal1   = 2.4
	WaveChopSpatialX2   = 0.35
	WaveChopSpatialZ2   = -0.5
	WaveChopTemporal2   = 2.9

	// WaveBaseOffset lifts the field so the surface sits above the plane
	WaveBaseOffset = 2.0
)

// Wave coloring
const (
	// WaveShallowBreak and WaveFoamBreak are the normalized height breakpoints
	WaveShallowBreak = 0.3
	WaveFoamBreak    = 0.7

	// WaveGradientStep is the central difference half-step for steepness
	WaveGradientStep = 0.5

	// WaveSteepnessThreshold is the gradient magnitude above which crests whiten
	WaveSteepnessThreshold = 0.35
	WaveSteepnessGain      = 1.5
	WaveSteepnessMaxMix    = 0.6

	// WaveFadeRadius is the distance from origin at which depth fade saturates
	WaveFadeRadius   = 140.0
	WaveFadeStrength = 0.45

	// WaveNormalInterval recomputes grid normals every Nth update
	WaveNormalInterval = 8
)

// Reference colors, deep to white
var (
	WaveColorDeep    = [3]uint8{8, 38, 74}
	WaveColorShallow = [3]uint8{24, 104, 150}
	WaveColorFoam    = [3]uint8{120, 190, 214}
	WaveColorWhite   = [3]uint8{236, 246, 250}
)
