// Package status is a lock-free metrics registry shared between the
// simulation goroutine and hosts that display or stream it.
package status

import (
	"strconv"
	"sync/atomic"
)

// Metric keys written by the engine
const (
	KeyTicks      = "engine.ticks"
	KeyFPS        = "engine.fps"
	KeyCollected  = "collectible.count"
	KeyRemaining  = "collectible.remaining"
	KeySpeed      = "vessel.speed"
	KeyMode       = "vessel.mode"
	KeyHullLoaded = "scene.hull"
	KeyEventsLost = "event.overwritten"
)

// Registry is the central metrics facade
// Writers cache pointers once; per-tick updates go straight to the atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot formats every metric as text keyed by name
func (r *Registry) Snapshot() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out[k] = strconv.FormatBool(v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out[k] = strconv.FormatFloat(v.Get(), 'f', 3, 64)
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out[k] = v.Load()
	})
	return out
}
