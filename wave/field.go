// Package wave is the deterministic procedural ocean surface.
// Height and Color are pure functions of (x, z, t); Grid samples them over a lattice.
package wave

import (
	"math"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
	"github.com/lixenwraith/tidewake/vmath"
)

// Sample is one evaluated surface point
type Sample struct {
	Height float64
	Color  core.RGB
}

// Sampler is the read side of the field consumed by vessel and fragments
type Sampler interface {
	Height(x, z, t float64) float64
}

// Field is the stateless Sampler over the package functions
type Field struct{}

func (Field) Height(x, z, t float64) float64 { return Height(x, z, t) }

var (
	windCos = math.Cos(parameter.WaveWindAngle)
	windSin = math.Sin(parameter.WaveWindAngle)

	// amplitudeSum bounds |height - base|
	amplitudeSum = parameter.WavePrimaryAmp + parameter.WaveCrossAmp +
		parameter.WaveSwellAmp + 2*parameter.WaveChopAmp

	colorDeep    = core.RGBFrom(parameter.WaveColorDeep)
	colorShallow = core.RGBFrom(parameter.WaveColorShallow)
	colorFoam    = core.RGBFrom(parameter.WaveColorFoam)
	colorWhite   = core.RGBFrom(parameter.WaveColorWhite)
)

// Height returns the surface height at (x, z) for simulation time t
func Height(x, z, t float64) float64 {
	along := x*windCos + z*windSin
	across := -x*windSin + z*windCos

	primary := parameter.WavePrimaryAmp *
		math.Sin(along*parameter.WavePrimarySpatial+t*parameter.WavePrimaryTemporal)
	cross := parameter.WaveCrossAmp *
		math.Sin(across*parameter.WaveCrossSpatial+t*parameter.WaveCrossTemporal)
	swell := parameter.WaveSwellAmp *
		math.Sin(x*parameter.WaveSwellSpatial+t*parameter.WaveSwellTemporal)
	chop := parameter.WaveChopAmp*math.Sin(x*parameter.WaveChopSpatialX1+z*parameter.WaveChopSpatialZ1+t*parameter.WaveChopTemporal1) +
		parameter.WaveChopAmp*math.Sin(x*parameter.WaveChopSpatialX2+z*parameter.WaveChopSpatialZ2+t*parameter.WaveChopTemporal2)

	return primary + cross + swell + chop + parameter.WaveBaseOffset
}

// Range returns the bounds Height can reach
func Range() (lo, hi float64) {
	return parameter.WaveBaseOffset - amplitudeSum, parameter.WaveBaseOffset + amplitudeSum
}

// Normalize maps a height into [0, 1] over Range
func Normalize(h float64) float64 {
	lo, hi := Range()
	return vmath.Clamp01(vmath.InvLerp(lo, hi, h))
}

// Steepness is the central-difference gradient magnitude of the surface
func Steepness(x, z, t float64) float64 {
	e := parameter.WaveGradientStep
	gx := (Height(x+e, z, t) - Height(x-e, z, t)) / (2 * e)
	gz := (Height(x, z+e, t) - Height(x, z-e, t)) / (2 * e)
	return math.Hypot(gx, gz)
}

// Ramp maps a normalized height onto deep → shallow → foam → white
func Ramp(n float64) core.RGB {
	n = vmath.Clamp01(n)
	switch {
	case n < parameter.WaveShallowBreak:
		return colorDeep.Lerp(colorShallow, n/parameter.WaveShallowBreak)
	case n < parameter.WaveFoamBreak:
		return colorShallow.Lerp(colorFoam,
			(n-parameter.WaveShallowBreak)/(parameter.WaveFoamBreak-parameter.WaveShallowBreak))
	default:
		return colorFoam.Lerp(colorWhite,
			(n-parameter.WaveFoamBreak)/(1-parameter.WaveFoamBreak))
	}
}

// FoamMix is the extra whitening applied for a given steepness
func FoamMix(steepness float64) float64 {
	if steepness <= parameter.WaveSteepnessThreshold {
		return 0
	}
	return math.Min((steepness-parameter.WaveSteepnessThreshold)*parameter.WaveSteepnessGain,
		parameter.WaveSteepnessMaxMix)
}

// DepthFade is the intensity multiplier at radial distance r from origin
func DepthFade(r float64) float64 {
	return 1 - parameter.WaveFadeStrength*vmath.Clamp01(r/parameter.WaveFadeRadius)
}

// Color returns the surface color at (x, z) for simulation time t
func Color(x, z, t float64) core.RGB {
	return shade(x, z, Height(x, z, t), Steepness(x, z, t))
}

// At evaluates height and color together, sharing the height sample
func At(x, z, t float64) Sample {
	h := Height(x, z, t)
	return Sample{Height: h, Color: shade(x, z, h, Steepness(x, z, t))}
}

func shade(x, z, h, steep float64) core.RGB {
	c := Ramp(Normalize(h))
	if mix := FoamMix(steep); mix > 0 {
		c = c.Lerp(colorWhite, mix)
	}
	return c.Scale(DepthFade(math.Hypot(x, z)))
}
