// Package vt defines the read-only view this presentation layer consumes
// from a terminal-state engine: visible cells, cursor, scrollback offset,
// and shell-integration semantic zones. The engine itself (ANSI parsing,
// PTY I/O) lives outside this module.
package vt

// CellFlags carries per-cell style flags from the terminal engine
type CellFlags uint16

const (
	FlagBold CellFlags = 1 << iota
	FlagItalic
	FlagDim
	FlagInverse
	FlagUnderline
	FlagDoubleUnderline
	FlagStrikeout
	FlagHidden
	// FlagWideSpacer marks the continuation cell of a wide character
	FlagWideSpacer
)

// ColorKind discriminates ColorRef variants
type ColorKind uint8

const (
	// ColorDefault is the engine's default foreground or background
	ColorDefault ColorKind = iota
	// ColorNamed is one of the 16 ANSI palette entries (Index 0-15)
	ColorNamed
	// ColorIndexed is a 256-color palette index (Index 16-255)
	ColorIndexed
	// ColorDirect is a direct 24-bit color
	ColorDirect
)

// ColorRef is a color reference as reported by the terminal engine.
// Resolution to concrete RGB goes through the theme palette.
type ColorRef struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// DefaultColor returns the default fg/bg reference
func DefaultColor() ColorRef {
	return ColorRef{Kind: ColorDefault}
}

// Named returns a reference to one of the 16 ANSI colors
func Named(idx uint8) ColorRef {
	return ColorRef{Kind: ColorNamed, Index: idx}
}

// Indexed returns a 256-color palette reference
func Indexed(idx uint8) ColorRef {
	return ColorRef{Kind: ColorIndexed, Index: idx}
}

// Direct returns a 24-bit color reference
func Direct(r, g, b uint8) ColorRef {
	return ColorRef{Kind: ColorDirect, R: r, G: g, B: b}
}

// Cell is one visible terminal cell. Line is a grid line which can be
// negative when scrolled into history; viewport line = Line + DisplayOffset
type Cell struct {
	Column int
	Line   int
	Rune   rune
	Flags  CellFlags
	Fg     ColorRef
	Bg     ColorRef
}

// CursorShape is the cursor shape requested by the terminal engine
type CursorShape uint8

const (
	CursorBlock CursorShape = iota
	CursorBeam
	CursorUnderline
	CursorHollowBlock
	CursorHidden
)

// CursorState is the engine-reported cursor
type CursorState struct {
	Line   int
	Column int
	Shape  CursorShape
	// Visible reflects the engine's show/hide mode (DECTCEM), independent
	// of blink phase which is owned by the compositor
	Visible bool
}

// SemanticZone classifies a terminal line from shell-integration markers
type SemanticZone uint8

const (
	ZoneUnknown SemanticZone = iota
	ZonePrompt
	ZoneInput
	ZoneOutput
)

// Source is the terminal-state engine as seen by the presentation layer.
// Implementations must tolerate being read once per frame from the render
// tick; no method may block.
type Source interface {
	// Size returns the grid dimensions in cells
	Size() (cols, lines int)

	// Cells returns the visible cell snapshot. The slice is owned by the
	// source and is only valid until the next frame; callers iterate it
	// exactly once and must not retain it
	Cells() []Cell

	// Cursor returns the engine-reported cursor state
	Cursor() CursorState

	// DisplayOffset returns the scrollback display offset in lines
	DisplayOffset() int

	// Zone returns the semantic zone tag of a viewport line
	Zone(line int) SemanticZone

	// SeenSemanticMarkers reports whether any shell-integration marker has
	// ever been observed. Sticky once true
	SeenSemanticMarkers() bool
}
