package engine

import "time"

// Clock supplies the driver's notion of now
type Clock interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// seconds converts a duration to the float seconds the simulation consumes
func seconds(d time.Duration) float64 {
	return d.Seconds()
}
