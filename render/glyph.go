package render

import (
	"math"

	"github.com/lixenwraith/tidewake/vmath"
)

// Heading arrows clockwise from screen-up
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// HeadingGlyph picks the arrow for a yaw on the top-down view
// Yaw 0 faces +Z, which is screen-down
func HeadingGlyph(yaw float64) rune {
	// Screen angle measured clockwise from up: +X is right, +Z is down
	dx, dz := math.Sin(yaw), math.Cos(yaw)
	a := math.Atan2(dx, -dz)
	a = vmath.WrapAngle(a)
	if a < 0 {
		a += 2 * math.Pi
	}
	sector := int(math.Floor(a/(math.Pi/4)+0.5)) % 8
	return headingGlyphs[sector]
}

// Swell glyphs from trough to crest
var swellGlyphs = []rune{' ', '·', '-', '~', '≈'}

// SwellGlyph maps normalized height [0, 1] to a texture rune
func SwellGlyph(n float64) rune {
	n = vmath.Clamp01(n)
	i := int(n * float64(len(swellGlyphs)))
	if i >= len(swellGlyphs) {
		i = len(swellGlyphs) - 1
	}
	return swellGlyphs[i]
}
