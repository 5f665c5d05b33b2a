package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/tidewake/core"
)

// ModeChangedPayload carries both sides of a mode transition
type ModeChangedPayload struct {
	From core.Mode `json:"from"`
	To   core.Mode `json:"to"`
}

// SessionStartedPayload describes a fresh fragment set
type SessionStartedPayload struct {
	Fragments int    `json:"fragments"`
	Preset    string `json:"preset"`
}

// SessionEndedPayload carries the count before reset
type SessionEndedPayload struct {
	Collected int `json:"collected"`
}

// FragmentCollectedPayload reports a collision pass that collected at least one fragment
type FragmentCollectedPayload struct {
	Collected int        `json:"collected"` // this tick
	Count     int        `json:"count"`     // session total
	Remaining int        `json:"remaining"`
	Vessel    mgl64.Vec3 `json:"vessel"`
}

// HullUnavailablePayload carries the load failure
type HullUnavailablePayload struct {
	Err error `json:"-"`
}
