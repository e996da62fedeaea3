package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manual time source that steps the frame loop in fixed frames
type MockTimeProvider struct {
	mu     sync.Mutex
	now    time.Time
	frames int
}

// NewMockTimeProvider starts the mock at start with no frames elapsed
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Frame moves time forward by one frame of length d
func (m *MockTimeProvider) Frame(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.frames++
}

// Tick runs n frames of length d, calling update after each
func (m *MockTimeProvider) Tick(n int, d time.Duration, update func()) {
	for i := 0; i < n; i++ {
		m.Frame(d)
		update()
	}
}

// Frames returns the number of frames stepped so far
func (m *MockTimeProvider) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}
