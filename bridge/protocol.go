package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message type constants of the bridge protocol
const (
	// Client to server
	TypeKeyDown         = "key_down"
	TypeKeyUp           = "key_up"
	TypeJoystickMove    = "joystick_move"
	TypeJoystickRelease = "joystick_release"
	TypeSelect          = "select"
	TypeExit            = "exit"

	// Server to client
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
	TypeError    = "error"
)

var (
	ErrUnknownType    = errors.New("unknown message type")
	ErrMalformed      = errors.New("malformed message")
	ErrSessionsFull   = errors.New("session limit reached")
	ErrSessionClosed  = errors.New("session closed")
	ErrMissingPayload = errors.New("missing payload")
)

// Envelope wraps every message in both directions
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// KeyPayload names a key as the browser reports it (KeyboardEvent.key)
type KeyPayload struct {
	Key string `json:"key"`
}

// JoystickPayload is the stick displacement from its center, in pixels
type JoystickPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SelectPayload is a pointer press in viewport pixels
type SelectPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HelloPayload describes the session to a fresh client
type HelloPayload struct {
	Session      uint32  `json:"session"`
	GridSide     int     `json:"gridSide"`
	GridSize     float64 `json:"gridSize"`
	Stride       int     `json:"stride"`
	TickMillis   int64   `json:"tickMillis"`
	Fragments    int     `json:"fragments"`
	CameraPreset string  `json:"cameraPreset"`
}

// EventPayload forwards a simulation notification
type EventPayload struct {
	Name  string `json:"name"`
	Frame int64  `json:"frame"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ErrorPayload reports a rejected client message
type ErrorPayload struct {
	For     string `json:"for,omitempty"`
	Message string `json:"message"`
}

// Encode builds an envelope around payload
func Encode(msgType string, payload any) ([]byte, error) {
	env := Envelope{Type: msgType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", msgType, err)
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

// Decode parses an envelope
func Decode(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("%w: empty type", ErrMalformed)
	}
	return env, nil
}

// payloadInto decodes the envelope payload into v
func payloadInto(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%s: %w", env.Type, ErrMissingPayload)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, env.Type, err)
	}
	return nil
}
