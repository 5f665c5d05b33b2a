package camera

import "errors"

var (
	// ErrInvalidPointer is returned for NaN, infinite, or off-viewport pointer coordinates
	ErrInvalidPointer = errors.New("invalid pointer coordinates")

	// ErrDegenerateViewport is returned when a projector has no area
	ErrDegenerateViewport = errors.New("degenerate viewport")

	ErrUnknownPreset = errors.New("unknown camera preset")
)
