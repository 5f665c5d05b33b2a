package parameter

const (
	// JoystickMaxRadius is the default travel of the virtual stick in pixels
	JoystickMaxRadius = 50.0

	// JoystickMinRadius floors MaxRadius to keep normalization finite
	JoystickMinRadius = 1.0

	// JoystickDeadZone is the normalized travel below which an axis is idle
	JoystickDeadZone = 0.3
)
