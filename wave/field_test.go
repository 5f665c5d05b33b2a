package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
)

func TestHeightDeterministic(t *testing.T) {
	points := [][3]float64{{0, 0, 0}, {12.5, -33.1, 4.2}, {-80, 80, 1000}}
	for _, p := range points {
		first := Height(p[0], p[1], p[2])
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Height(p[0], p[1], p[2]))
		}
		assert.Equal(t, Color(p[0], p[1], p[2]), Color(p[0], p[1], p[2]))
	}
}

func TestHeightAtOriginTimeZero(t *testing.T) {
	// Every sine argument is zero at the origin at t=0
	assert.InDelta(t, parameter.WaveBaseOffset, Height(0, 0, 0), 1e-12)
}

func TestHeightWithinRange(t *testing.T) {
	lo, hi := Range()
	for x := -90.0; x <= 90; x += 7.3 {
		for z := -90.0; z <= 90; z += 6.1 {
			h := Height(x, z, x*0.1+z*0.05)
			assert.GreaterOrEqual(t, h, lo)
			assert.LessOrEqual(t, h, hi)
		}
	}
}

func TestHeightVariesWithTime(t *testing.T) {
	assert.NotEqual(t, Height(10, 10, 0), Height(10, 10, 1))
}

func TestNormalize(t *testing.T) {
	lo, hi := Range()
	assert.Equal(t, 0.0, Normalize(lo))
	assert.Equal(t, 1.0, Normalize(hi))
	assert.Equal(t, 0.0, Normalize(lo-10))
	assert.InDelta(t, 0.5, Normalize((lo+hi)/2), 1e-12)
}

func TestRampBreakpoints(t *testing.T) {
	assert.Equal(t, core.RGBFrom(parameter.WaveColorDeep), Ramp(0))
	assert.Equal(t, core.RGBFrom(parameter.WaveColorShallow), Ramp(parameter.WaveShallowBreak))
	assert.Equal(t, core.RGBFrom(parameter.WaveColorFoam), Ramp(parameter.WaveFoamBreak))
	assert.Equal(t, core.RGBFrom(parameter.WaveColorWhite), Ramp(1))

	// Brightness grows monotonically along the ramp
	prev := -1.0
	for n := 0.0; n <= 1.0; n += 0.05 {
		l := luma(Ramp(n))
		assert.GreaterOrEqual(t, l, prev-1e-3)
		prev = l
	}
}

func TestFoamMix(t *testing.T) {
	assert.Equal(t, 0.0, FoamMix(parameter.WaveSteepnessThreshold))
	assert.Greater(t, FoamMix(parameter.WaveSteepnessThreshold+0.1), 0.0)
	assert.Equal(t, parameter.WaveSteepnessMaxMix, FoamMix(100))
}

func TestDepthFade(t *testing.T) {
	assert.Equal(t, 1.0, DepthFade(0))
	assert.InDelta(t, 1-parameter.WaveFadeStrength, DepthFade(parameter.WaveFadeRadius), 1e-12)
	assert.InDelta(t, 1-parameter.WaveFadeStrength, DepthFade(10*parameter.WaveFadeRadius), 1e-12)
	assert.Greater(t, DepthFade(10), DepthFade(100))
}

func TestColorFadesWithDistance(t *testing.T) {
	// Same height and steepness are not guaranteed off-origin, compare via shade directly
	near := shade(0, 0, parameter.WaveBaseOffset, 0)
	far := shade(0, parameter.WaveFadeRadius, parameter.WaveBaseOffset, 0)
	assert.Greater(t, luma(near), luma(far))
}

func TestSteepnessFlatAtOriginNonNegative(t *testing.T) {
	s := Steepness(3, 4, 2)
	require.False(t, math.IsNaN(s))
	assert.GreaterOrEqual(t, s, 0.0)
}

func TestAtMatchesHeightAndColor(t *testing.T) {
	s := At(5, -7, 3.5)
	assert.Equal(t, Height(5, -7, 3.5), s.Height)
	assert.Equal(t, Color(5, -7, 3.5), s.Color)
}

func luma(c core.RGB) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}
