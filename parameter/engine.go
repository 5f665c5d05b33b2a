package parameter

import "time"

// Frame loop timing
const (
	// FrameUpdateInterval is the simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta handed to a tick after a host stall (seconds)
	MaxFrameDelta = 0.1

	// InputQueueSize is the capacity of the driver input channel
	// Producers block when full, never drop
	InputQueueSize = 256

	// EventQueueSize is the notification ring capacity, power of 2
	// Oldest notifications are overwritten when full
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1

	// DefaultSeed seeds fragment placement when config provides none
	DefaultSeed = 0x7ea5e1
)
