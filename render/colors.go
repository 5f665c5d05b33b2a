package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tidewake/core"
)

var (
	RgbBackground     = tcell.NewRGBColor(4, 14, 28)
	RgbStatusBar      = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBarBg    = tcell.NewRGBColor(18, 30, 48)
	RgbHint           = tcell.NewRGBColor(180, 200, 214)
	RgbVessel         = tcell.NewRGBColor(250, 240, 220)
	RgbVesselPlayer   = tcell.NewRGBColor(255, 165, 0) // Orange while piloted
	RgbFragment       = tcell.NewRGBColor(255, 220, 60)
	RgbJoystickRing   = tcell.NewRGBColor(120, 140, 160)
	RgbJoystickKnob   = tcell.NewRGBColor(255, 255, 255)
	RgbModeAutonomous = tcell.NewRGBColor(100, 190, 255)
	RgbModePlayer     = tcell.NewRGBColor(255, 165, 0)
)

// Color converts a simulation color to a terminal color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
