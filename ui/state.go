package ui

import (
	"github.com/lixenwraith/phosphor/engine"
)

// ContextMenuState tracks the right-click menu
type ContextMenuState struct {
	Visible       bool
	X, Y          int
	SelectedIndex int
	Items         []string
}

// Show opens the menu at a cell position
func (m *ContextMenuState) Show(x, y int) {
	m.Visible = true
	m.X, m.Y = x, y
	m.SelectedIndex = 0
}

// Hide closes the menu
func (m *ContextMenuState) Hide() {
	m.Visible = false
}

// SelectNext moves the hover down, clamped
func (m *ContextMenuState) SelectNext() {
	if len(m.Items) > 0 && m.SelectedIndex < len(m.Items)-1 {
		m.SelectedIndex++
	}
}

// SelectPrevious moves the hover up, clamped
func (m *ContextMenuState) SelectPrevious() {
	if m.SelectedIndex > 0 {
		m.SelectedIndex--
	}
}

// RenameState tracks the surface rename dialog
type RenameState struct {
	Active bool
	Text   string
}

// SelectionSpan is a contiguous selected region in viewport coordinates.
// A span covers whole lines between StartLine and EndLine, bounded by
// StartCol on the first line and EndCol (exclusive) on the last.
type SelectionSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// Contains reports whether a cell lies inside the span
func (s SelectionSpan) Contains(line, col int) bool {
	if line < s.StartLine || line > s.EndLine {
		return false
	}
	if line == s.StartLine && col < s.StartCol {
		return false
	}
	if line == s.EndLine && col >= s.EndCol {
		return false
	}
	return true
}

// URLMatch is a detected hyperlink span on a viewport line
type URLMatch struct {
	URL      string
	Line     int
	StartCol int
	EndCol   int
}

// Contains reports whether a cell falls inside the link span
func (u URLMatch) Contains(line, col int) bool {
	return u.Line == line && col >= u.StartCol && col < u.EndCol
}

// State aggregates all UI-owned inputs to the compositor for one surface.
// The compositor reads it; input handling mutates it between ticks.
type State struct {
	Search      SearchState
	ContextMenu ContextMenuState
	Rename      RenameState

	// Selection is nil when nothing is selected
	Selection *SelectionSpan

	// DetectedURLs are hyperlink spans in the current viewport; HoveredURL
	// indexes into it, -1 when none is hovered
	DetectedURLs []URLMatch
	HoveredURL   int

	Zoom  *ZoomIndicator
	Copy  *CopyIndicator
	Toast *Toast
}

// NewState creates idle UI state on the given clock
func NewState(clock engine.TimeProvider) *State {
	return &State{
		HoveredURL: -1,
		Zoom:       NewZoomIndicator(clock),
		Copy:       NewCopyIndicator(clock),
		Toast:      NewToast(clock),
	}
}

// HoveredLink returns the hovered URL span, if any
func (s *State) HoveredLink() (URLMatch, bool) {
	if s.HoveredURL < 0 || s.HoveredURL >= len(s.DetectedURLs) {
		return URLMatch{}, false
	}
	return s.DetectedURLs[s.HoveredURL], true
}

// AnyIndicatorVisible reports whether an indicator fade is still running
func (s *State) AnyIndicatorVisible() bool {
	return s.Zoom.Visible() || s.Copy.Visible() || s.Toast.Visible()
}
