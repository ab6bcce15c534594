// Package ui holds per-surface UI state that feeds the compositor: fade
// timers, transient indicators, search, selection, context menu and rename
// dialogs. None of it touches the screen; everything is plain state driven
// by an injected clock so it stays testable.
package ui

import (
	"time"

	"github.com/lixenwraith/phosphor/engine"
)

// FadeTimer is a reusable triggered-at + duration primitive producing an
// opacity curve: fully opaque until fadeWindow remains, then a linear ramp
// to zero at expiry. Safe to query every frame; Trigger restarts it.
type FadeTimer struct {
	clock       engine.TimeProvider
	triggeredAt time.Time
	duration    time.Duration
	fadeWindow  time.Duration
}

// NewFadeTimer creates an untriggered timer. fadeWindow is the tail of the
// lifetime over which opacity ramps down; it is clamped to the duration.
func NewFadeTimer(clock engine.TimeProvider, duration, fadeWindow time.Duration) *FadeTimer {
	if fadeWindow > duration {
		fadeWindow = duration
	}
	return &FadeTimer{
		clock:      clock,
		duration:   duration,
		fadeWindow: fadeWindow,
	}
}

// Trigger records now as the trigger instant, restarting the fade
func (t *FadeTimer) Trigger() {
	t.triggeredAt = t.clock.Now()
}

// Visible reports whether the timer is within its lifetime
func (t *FadeTimer) Visible() bool {
	if t.triggeredAt.IsZero() {
		return false
	}
	return t.clock.Now().Sub(t.triggeredAt) < t.duration
}

// Opacity returns 1.0 while more than fadeWindow remains, ramps linearly
// to 0.0 at expiry, and returns 0.0 when expired or never triggered
func (t *FadeTimer) Opacity() float64 {
	if t.triggeredAt.IsZero() {
		return 0.0
	}
	elapsed := t.clock.Now().Sub(t.triggeredAt)
	if elapsed >= t.duration {
		return 0.0
	}
	remaining := t.duration - elapsed
	if remaining >= t.fadeWindow {
		return 1.0
	}
	if t.fadeWindow <= 0 {
		return 1.0
	}
	return float64(remaining) / float64(t.fadeWindow)
}
