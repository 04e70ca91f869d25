package scene

import (
	"sync"
	"time"

	"github.com/golangdaddy/highway/pkg/traffic"
)

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. The headless renderer drives it with a
// fixed step; tests drive it with arbitrary gaps.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a manual clock starting at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// FrameClock turns clock readings into per-frame deltas in seconds
type FrameClock struct {
	clock   Clock
	last    time.Time
	started bool
}

// NewFrameClock creates a frame clock over c
func NewFrameClock(c Clock) *FrameClock {
	return &FrameClock{clock: c}
}

// Next returns the seconds since the previous call, clamped to
// [0, traffic.MaxStep]. The first call returns 0.
func (f *FrameClock) Next() float64 {
	now := f.clock.Now()
	if !f.started {
		f.last, f.started = now, true
		return 0
	}
	dt := now.Sub(f.last).Seconds()
	f.last = now
	return traffic.ClampStep(dt)
}
