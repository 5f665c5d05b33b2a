package parameter

// Static orbit camera, the default pose shown while the vessel cruises
var (
	CameraDefaultPosition = [3]float64{0, 25, 50}
	CameraDefaultTarget   = [3]float64{0, 0, 0}
)

const (
	// CameraAutoRotateSpeed is the programmatic orbit rate in rad/s, 0 holds the pose
	CameraAutoRotateSpeed = 0.0

	// CameraYawDamping is the fraction of vessel yaw applied to the look-ahead
	CameraYawDamping = 0.3

	CameraFOV  = 60.0 // degrees, vertical
	CameraNear = 0.1
	CameraFar  = 1000.0
)

// Chase presets, selected once per session
const (
	CameraDesktopDistance   = 18.0
	CameraDesktopHeight     = 7.0
	CameraDesktopLookAhead  = 6.0
	CameraDesktopLookHeight = 1.5

	CameraTouchDistance   = 26.0
	CameraTouchHeight     = 11.0
	CameraTouchLookAhead  = 8.0
	CameraTouchLookHeight = 2.0
)
