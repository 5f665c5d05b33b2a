package camera

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/tidewake/parameter"
)

// Preset is a chase offset set, chosen once per session
type Preset struct {
	Distance   float64
	Height     float64
	LookAhead  float64
	LookHeight float64
}

func DesktopPreset() Preset {
	return Preset{
		Distance:   parameter.CameraDesktopDistance,
		Height:     parameter.CameraDesktopHeight,
		LookAhead:  parameter.CameraDesktopLookAhead,
		LookHeight: parameter.CameraDesktopLookHeight,
	}
}

func TouchPreset() Preset {
	return Preset{
		Distance:   parameter.CameraTouchDistance,
		Height:     parameter.CameraTouchHeight,
		LookAhead:  parameter.CameraTouchLookAhead,
		LookHeight: parameter.CameraTouchLookHeight,
	}
}

// PresetByName resolves "desktop" or "touch"
func PresetByName(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "desktop":
		return DesktopPreset(), nil
	case "touch", "mobile":
		return TouchPreset(), nil
	default:
		return Preset{}, fmt.Errorf("camera preset %q: %w", name, ErrUnknownPreset)
	}
}
