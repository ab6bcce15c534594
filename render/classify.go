package render

import (
	"github.com/lixenwraith/phosphor/terminal"
	"github.com/lixenwraith/phosphor/theme"
	"github.com/lixenwraith/phosphor/ui"
	"github.com/lixenwraith/phosphor/vt"
)

// DecorationKind discriminates cell decorations
type DecorationKind uint8

const (
	DecorationBackground DecorationKind = iota
	DecorationUnderline
	DecorationStrikethrough
)

// Decoration is one cell-aligned decoration in viewport coordinates.
// Background decorations are drawn before glyphs, Underline and
// Strikethrough after.
type Decoration struct {
	X, Y          int
	Width, Height int
	Color         terminal.RGB
	Kind          DecorationKind
}

// CursorInfo is the classified cursor geometry for the draw passes
type CursorInfo struct {
	X, Y                  int
	CellWidth, CellHeight int
	// Visible reflects the terminal engine's show/hide mode, independent
	// of the blink phase owned by the compositor
	Visible bool
	Shape   vt.CursorShape
}

// Glyph is one positioned glyph routed to a draw tier
type Glyph struct {
	X, Y  int
	Rune  rune
	Fg    terminal.RGB
	Attrs terminal.Attr
}

// Classification is the cached output of the classifier pass: the single
// source of truth for passes needing cursor or decoration geometry.
// Replaced only when the content fingerprint changes.
type Classification struct {
	Cursor      CursorInfo
	Decorations []Decoration
	// Glow holds glyphs on prompt/input lines, rendered through the
	// blurred composite pass; Flat holds everything else
	Glow []Glyph
	Flat []Glyph
}

// Classify performs the single pass over the engine's visible cells,
// producing decoration and glyph buckets. The cell slice is consumed
// exactly once. A nil source yields an empty classification (missing
// target: the compositor still runs background and chrome passes).
func Classify(src vt.Source, th *theme.Theme, uiState *ui.State) Classification {
	var out Classification
	if src == nil {
		return out
	}

	cols, lines := src.Size()
	offset := src.DisplayOffset()
	cursor := src.Cursor()
	cursorLine := cursor.Line + offset

	out.Cursor = CursorInfo{
		X:          cursor.Column,
		Y:          cursorLine,
		CellWidth:  1,
		CellHeight: 1,
		Visible:    cursor.Visible,
		Shape:      cursor.Shape,
	}

	defaultBg := th.DefaultBackground()
	semantic := src.SeenSemanticMarkers()

	var hovered ui.URLMatch
	var hasHovered bool
	if uiState != nil {
		hovered, hasHovered = uiState.HoveredLink()
	}
	searchActive := uiState != nil && uiState.Search.Active

	for _, cell := range src.Cells() {
		line := cell.Line + offset
		if line < 0 || line >= lines || cell.Column < 0 || cell.Column >= cols {
			continue
		}

		// Effective colors: INVERSE swaps fg/bg before any extraction
		fg := th.Resolve(cell.Fg, th.Foreground)
		bg := th.Resolve(cell.Bg, defaultBg)
		if cell.Flags&vt.FlagInverse != 0 {
			fg, bg = bg, fg
		}
		if cell.Flags&vt.FlagDim != 0 {
			fg = terminal.Scale(fg, 0.5)
		}

		// Spacers and hidden cells are excluded from background
		// decoration only, never from underline/strikethrough
		drawable := cell.Flags&(vt.FlagWideSpacer|vt.FlagHidden) == 0

		if drawable && bg != defaultBg {
			out.Decorations = append(out.Decorations, Decoration{
				X: cell.Column, Y: line, Width: 1, Height: 1,
				Color: bg, Kind: DecorationBackground,
			})
		}

		if cell.Flags&(vt.FlagUnderline|vt.FlagDoubleUnderline) != 0 {
			out.Decorations = append(out.Decorations, Decoration{
				X: cell.Column, Y: line, Width: 1, Height: 1,
				Color: fg, Kind: DecorationUnderline,
			})
		}

		if cell.Flags&vt.FlagStrikeout != 0 {
			out.Decorations = append(out.Decorations, Decoration{
				X: cell.Column, Y: line, Width: 1, Height: 1,
				Color: fg, Kind: DecorationStrikethrough,
			})
		}

		if hasHovered && hovered.Contains(line, cell.Column) {
			out.Decorations = append(out.Decorations, Decoration{
				X: cell.Column, Y: line, Width: 1, Height: 1,
				Color: fg, Kind: DecorationUnderline,
			})
		}

		if !drawable || cell.Rune == 0 || cell.Rune == ' ' {
			continue
		}

		glyph := Glyph{
			X:     cell.Column,
			Y:     line,
			Rune:  cell.Rune,
			Fg:    fg,
			Attrs: glyphAttrs(cell.Flags),
		}

		if glowLine(semantic, src, line, cursorLine) {
			out.Glow = append(out.Glow, glyph)
		} else {
			out.Flat = append(out.Flat, glyph)
		}
	}

	// Search highlight: one span decoration per match, appended after the
	// cell decorations so the highlight draws over per-cell backgrounds.
	// The focused match uses the current color, all others the dimmer one
	if searchActive {
		for i, m := range uiState.Search.Matches {
			if m.Line < 0 || m.Line >= lines {
				continue
			}
			start, end := m.StartCol, m.EndCol
			if start < 0 {
				start = 0
			}
			if end > cols {
				end = cols
			}
			if start >= end {
				continue
			}
			color := th.Highlight.Others
			if i == uiState.Search.CurrentMatch {
				color = th.Highlight.Current
			}
			out.Decorations = append(out.Decorations, Decoration{
				X: start, Y: m.Line, Width: end - start, Height: 1,
				Color: color, Kind: DecorationBackground,
			})
		}
	}

	return out
}

// glowLine routes a viewport line to the glow tier. With shell-integration
// markers present, prompt and input zones glow. Without them the heuristic
// is the cursor's line plus the line above (multi-line prompts); the
// heuristic yields the moment real zone data appears.
func glowLine(semantic bool, src vt.Source, line, cursorLine int) bool {
	if semantic {
		switch src.Zone(line) {
		case vt.ZonePrompt, vt.ZoneInput:
			return true
		default:
			return false
		}
	}
	return line == cursorLine || line == cursorLine-1
}

func glyphAttrs(flags vt.CellFlags) terminal.Attr {
	var a terminal.Attr
	if flags&vt.FlagBold != 0 {
		a |= terminal.AttrBold
	}
	if flags&vt.FlagItalic != 0 {
		a |= terminal.AttrItalic
	}
	if flags&vt.FlagDim != 0 {
		a |= terminal.AttrDim
	}
	return a
}
