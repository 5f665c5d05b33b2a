package engine

import "errors"

var (
	// ErrAssetUnavailable marks a hull asset that could not be loaded
	// Hit-testing stays disabled; the simulation keeps running
	ErrAssetUnavailable = errors.New("asset unavailable")

	// ErrHitTestDisabled is returned by PointerSelect while no picker is attached
	ErrHitTestDisabled = errors.New("hit-testing disabled")

	ErrDriverRunning = errors.New("driver already running")
	ErrDriverStopped = errors.New("driver stopped")
)
