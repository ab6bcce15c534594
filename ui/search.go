package ui

// SearchMatch is one match location. Line is a viewport line; columns are
// start-inclusive, end-exclusive.
type SearchMatch struct {
	Line     int
	StartCol int
	EndCol   int
}

// Contains reports whether a cell position falls within this match
func (m SearchMatch) Contains(line, col int) bool {
	return m.Line == line && col >= m.StartCol && col < m.EndCol
}

// SearchState is the find-in-terminal state, read-only to the compositor
type SearchState struct {
	Active       bool
	Query        string
	Matches      []SearchMatch
	CurrentMatch int
}

// Open activates search mode
func (s *SearchState) Open() {
	s.Active = true
}

// Close deactivates search and clears all state
func (s *SearchState) Close() {
	s.Active = false
	s.Query = ""
	s.Matches = nil
	s.CurrentMatch = 0
}

// SetMatches replaces the match list and resets focus to the first match
func (s *SearchState) SetMatches(matches []SearchMatch) {
	s.Matches = matches
	s.CurrentMatch = 0
}

// NextMatch advances focus, wrapping
func (s *SearchState) NextMatch() {
	if len(s.Matches) > 0 {
		s.CurrentMatch = (s.CurrentMatch + 1) % len(s.Matches)
	}
}

// PreviousMatch moves focus back, wrapping
func (s *SearchState) PreviousMatch() {
	if len(s.Matches) == 0 {
		return
	}
	if s.CurrentMatch == 0 {
		s.CurrentMatch = len(s.Matches) - 1
	} else {
		s.CurrentMatch--
	}
}
