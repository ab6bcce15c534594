package engine

import (
	"sync"
	"time"
)

// TimeProvider abstracts the clock so timer math is deterministic in tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualTimeProvider is a clock that only moves when told to. Tests
// advance it between frames to land fade timers exactly on their edges.
type ManualTimeProvider struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualTimeProvider creates a manual clock starting at the given instant
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the clock's current reading
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Advance moves the clock forward by d
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

// Tick advances by one frame interval at the given rate
func (p *ManualTimeProvider) Tick(fps int) {
	p.Advance(time.Second / time.Duration(fps))
}
