package vt

// Fake is an in-memory Source for tests and the demo binary
type Fake struct {
	Cols, Lines int
	Grid        []Cell
	CursorState CursorState
	Offset      int
	Zones       map[int]SemanticZone
	SeenMarkers bool
}

// NewFake creates an empty fake source of the given size
func NewFake(cols, lines int) *Fake {
	return &Fake{
		Cols:  cols,
		Lines: lines,
		Zones: make(map[int]SemanticZone),
		CursorState: CursorState{
			Shape:   CursorBlock,
			Visible: true,
		},
	}
}

// SetText writes a string onto a line starting at a column, replacing any
// cells already present at those positions
func (f *Fake) SetText(line, col int, text string) {
	for i, r := range []rune(text) {
		f.SetCell(Cell{
			Column: col + i,
			Line:   line,
			Rune:   r,
			Fg:     DefaultColor(),
			Bg:     DefaultColor(),
		})
	}
}

// SetCell adds or replaces a cell at its position
func (f *Fake) SetCell(c Cell) {
	for i := range f.Grid {
		if f.Grid[i].Line == c.Line && f.Grid[i].Column == c.Column {
			f.Grid[i] = c
			return
		}
	}
	f.Grid = append(f.Grid, c)
}

// SetZone tags a viewport line with a semantic zone and marks the source
// as having seen shell-integration markers
func (f *Fake) SetZone(line int, zone SemanticZone) {
	f.Zones[line] = zone
	f.SeenMarkers = true
}

func (f *Fake) Size() (int, int)          { return f.Cols, f.Lines }
func (f *Fake) Cells() []Cell             { return f.Grid }
func (f *Fake) Cursor() CursorState       { return f.CursorState }
func (f *Fake) DisplayOffset() int        { return f.Offset }
func (f *Fake) SeenSemanticMarkers() bool { return f.SeenMarkers }

func (f *Fake) Zone(line int) SemanticZone {
	if z, ok := f.Zones[line]; ok {
		return z
	}
	return ZoneUnknown
}
