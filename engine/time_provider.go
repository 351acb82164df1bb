package engine

import "time"

// TimeProvider supplies wall-clock time to the celestial placement
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provides the real system time with monotonic clock readings
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current local time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
