package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable wall clock for tests and the developer time offset tooling
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// SetClock moves the mock to hour:minute on its current date
func (m *MockTimeProvider) SetClock(hour, minute int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.currentTime
	m.currentTime = time.Date(c.Year(), c.Month(), c.Day(), hour, minute, 0, 0, c.Location())
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
