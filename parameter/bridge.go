package parameter

import "time"

// Websocket bridge defaults
const (
	// BridgeMaxSessions caps concurrent connections, each owning a private simulation
	BridgeMaxSessions = 16

	// BridgeSendQueueSize is the per-session outbound queue; snapshots are dropped when full
	BridgeSendQueueSize = 64

	// BridgePingInterval is the keepalive period
	BridgePingInterval = 25 * time.Second

	// BridgePongWait is how long a silent client survives; must exceed BridgePingInterval
	BridgePongWait = 60 * time.Second
)
