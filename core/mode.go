package core

// Mode is the vessel control mode, mirrored by camera and input
type Mode uint8

const (
	ModeAutonomous Mode = iota
	ModePlayer
)

func (m Mode) String() string {
	switch m {
	case ModeAutonomous:
		return "autonomous"
	case ModePlayer:
		return "player"
	}
	return "unknown"
}
