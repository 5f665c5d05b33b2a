package input

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionExit
)

var actionNames = map[string]Action{
	"up":    ActionUp,
	"down":  ActionDown,
	"left":  ActionLeft,
	"right": ActionRight,
	"exit":  ActionExit,
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "none"
}

// directional reports whether the action drives State
func (a Action) directional() bool {
	return a >= ActionUp && a <= ActionRight
}

// Intent is a discrete request produced by an input event, consumed by the simulation
type Intent uint8

const (
	IntentNone Intent = iota
	// IntentExit asks the vessel to leave player control
	IntentExit
)
