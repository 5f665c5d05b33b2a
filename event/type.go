package event

// EventType represents the type of simulation notification
type EventType int

const (
	// EventModeChanged signals a vessel mode transition
	// Trigger: Simulation on select or exit | Payload: *ModeChangedPayload
	EventModeChanged EventType = iota

	// EventSessionStarted signals fragments spawned for a new player session
	// Trigger: Simulation entering player mode | Payload: *SessionStartedPayload
	EventSessionStarted

	// EventSessionEnded signals fragments discarded and count reset
	// Trigger: Simulation leaving player mode | Payload: *SessionEndedPayload
	EventSessionEnded

	// EventFragmentCollected signals one or more fragments collected in a tick
	// Trigger: Step collision pass | Consumer: audio, HUD | Payload: *FragmentCollectedPayload
	EventFragmentCollected

	// EventHullAvailable signals the hit-test proxy is attached
	// Trigger: AttachHull, LoadHull success | Payload: nil
	EventHullAvailable

	// EventHullUnavailable signals the hull asset failed to load
	// Hit-testing stays disabled until a later attach succeeds
	// Trigger: LoadHull failure | Payload: *HullUnavailablePayload
	EventHullUnavailable
)

var eventNames = map[EventType]string{
	EventModeChanged:       "mode_changed",
	EventSessionStarted:    "session_started",
	EventSessionEnded:      "session_ended",
	EventFragmentCollected: "fragment_collected",
	EventHullAvailable:     "hull_available",
	EventHullUnavailable:   "hull_unavailable",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed notification with its tick number
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
