package game

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings to the driver.
type TimeProvider interface {
	Now() time.Time
}

// WallClock reads the system monotonic clock.
type WallClock struct{}

// Now returns the current time with monotonic clock reading.
func (WallClock) Now() time.Time {
	return time.Now()
}

// MockClock provides a controllable time source for tests.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockClock creates a mock clock at the given start time.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{currentTime: start}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time.
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
