package ui

import (
	"testing"
	"time"

	"github.com/lixenwraith/phosphor/engine"
)

func TestFadeTimerLifecycle(t *testing.T) {
	clock := engine.NewManualTimeProvider(time.Unix(1000, 0))
	timer := NewFadeTimer(clock, 1000*time.Millisecond, 400*time.Millisecond)

	if timer.Visible() {
		t.Error("untriggered timer should not be visible")
	}
	if op := timer.Opacity(); op != 0 {
		t.Errorf("untriggered opacity = %f, want 0", op)
	}

	timer.Trigger()
	if !timer.Visible() {
		t.Error("triggered timer should be visible")
	}
	if op := timer.Opacity(); op != 1.0 {
		t.Errorf("fresh opacity = %f, want 1.0", op)
	}

	// Still in the solid window at 600ms elapsed, 400ms remaining
	clock.Advance(600 * time.Millisecond)
	if op := timer.Opacity(); op != 1.0 {
		t.Errorf("solid-window opacity = %f, want 1.0", op)
	}

	// Halfway through the fade window
	clock.Advance(200 * time.Millisecond)
	if op := timer.Opacity(); op < 0.49 || op > 0.51 {
		t.Errorf("mid-fade opacity = %f, want ~0.5", op)
	}

	clock.Advance(200 * time.Millisecond)
	if timer.Visible() {
		t.Error("expired timer should not be visible")
	}
	if op := timer.Opacity(); op != 0 {
		t.Errorf("expired opacity = %f, want 0", op)
	}
}

func TestFadeTimerRetrigger(t *testing.T) {
	clock := engine.NewManualTimeProvider(time.Unix(1000, 0))
	timer := NewFadeTimer(clock, 500*time.Millisecond, 500*time.Millisecond)

	timer.Trigger()
	clock.Advance(450 * time.Millisecond)
	if op := timer.Opacity(); op > 0.2 {
		t.Errorf("late opacity = %f, want near 0", op)
	}

	timer.Trigger()
	if op := timer.Opacity(); op != 1.0 {
		t.Errorf("retriggered opacity = %f, want 1.0", op)
	}
}

func TestFadeTimerOpacityMonotonic(t *testing.T) {
	clock := engine.NewManualTimeProvider(time.Unix(1000, 0))
	timer := NewFadeTimer(clock, 1000*time.Millisecond, 1000*time.Millisecond)
	timer.Trigger()

	prev := timer.Opacity()
	for i := 0; i < 25; i++ {
		clock.Advance(50 * time.Millisecond)
		op := timer.Opacity()
		if op > prev {
			t.Fatalf("opacity increased from %f to %f at step %d", prev, op, i)
		}
		prev = op
	}
}

func TestFadeWindowClampedToDuration(t *testing.T) {
	clock := engine.NewManualTimeProvider(time.Unix(1000, 0))
	timer := NewFadeTimer(clock, 200*time.Millisecond, 10*time.Second)
	timer.Trigger()

	clock.Advance(100 * time.Millisecond)
	if op := timer.Opacity(); op < 0.49 || op > 0.51 {
		t.Errorf("clamped mid-fade opacity = %f, want ~0.5", op)
	}
}

func TestIndicatorDefaults(t *testing.T) {
	clock := engine.NewManualTimeProvider(time.Unix(1000, 0))
	st := NewState(clock)

	if st.AnyIndicatorVisible() {
		t.Error("fresh state should have no visible indicators")
	}

	st.Zoom.Show(150)
	if st.Zoom.Percent != 150 {
		t.Errorf("zoom percent = %d, want 150", st.Zoom.Percent)
	}
	if !st.AnyIndicatorVisible() {
		t.Error("zoom indicator should be visible after Show")
	}

	clock.Advance(2 * time.Second)
	if st.AnyIndicatorVisible() {
		t.Error("zoom indicator should fade out after its lifetime")
	}

	st.Toast.Show(ToastError, "disk full")
	if !st.Toast.Visible() || st.Toast.Kind != ToastError {
		t.Error("toast should be visible with its kind after Show")
	}
}

func TestSearchStateNavigation(t *testing.T) {
	var s SearchState
	s.Open()
	s.SetMatches([]SearchMatch{
		{Line: 0, StartCol: 0, EndCol: 3},
		{Line: 2, StartCol: 5, EndCol: 9},
		{Line: 4, StartCol: 1, EndCol: 2},
	})

	if s.CurrentMatch != 0 {
		t.Errorf("initial current match = %d, want 0", s.CurrentMatch)
	}
	s.NextMatch()
	s.NextMatch()
	s.NextMatch() // wraps
	if s.CurrentMatch != 0 {
		t.Errorf("after wrap current match = %d, want 0", s.CurrentMatch)
	}
	s.PreviousMatch() // wraps backward
	if s.CurrentMatch != 2 {
		t.Errorf("after backward wrap current match = %d, want 2", s.CurrentMatch)
	}

	if !s.Matches[1].Contains(2, 8) {
		t.Error("match should contain cell inside span")
	}
	if s.Matches[1].Contains(2, 9) {
		t.Error("match end column is exclusive")
	}
}

func TestSelectionSpanContains(t *testing.T) {
	span := SelectionSpan{StartLine: 1, StartCol: 4, EndLine: 3, EndCol: 2}

	tests := []struct {
		name      string
		line, col int
		want      bool
	}{
		{"before start line", 0, 10, false},
		{"start line before col", 1, 3, false},
		{"start line at col", 1, 4, true},
		{"middle line any col", 2, 0, true},
		{"end line inside", 3, 1, true},
		{"end line at exclusive end", 3, 2, false},
		{"after end line", 4, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := span.Contains(tt.line, tt.col); got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.line, tt.col, got, tt.want)
			}
		})
	}
}
