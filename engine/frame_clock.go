package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// FrameClock turns wall clock readings into simulation deltas in seconds.
// While paused no simulated time accumulates.
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	paused   bool
	maxDelta float64
}

// NewFrameClock creates a clock whose first Tick measures from now
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: constants.MaxFrameDelta,
	}
}

// Tick returns the seconds elapsed since the previous Tick, zero while paused
func (fc *FrameClock) Tick() float64 {
	now := fc.provider.Now()
	elapsed := now.Sub(fc.last).Seconds()
	fc.last = now

	if fc.paused || elapsed < 0 {
		return 0
	}
	if elapsed > fc.maxDelta {
		return fc.maxDelta
	}
	return elapsed
}

// Pause stops simulated time
func (fc *FrameClock) Pause() {
	fc.paused = true
}

// Resume continues simulated time without counting the paused span
func (fc *FrameClock) Resume() {
	if !fc.paused {
		return
	}
	fc.paused = false
	fc.last = fc.provider.Now()
}

// Toggle flips the pause state and returns the new state
func (fc *FrameClock) Toggle() bool {
	if fc.paused {
		fc.Resume()
	} else {
		fc.Pause()
	}
	return fc.paused
}

// IsPaused returns current pause state
func (fc *FrameClock) IsPaused() bool {
	return fc.paused
}
