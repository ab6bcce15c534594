package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrStrike    Attr = 1 << 6
)

// AttrStyle masks only the style bits
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrStrike

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Screen provides low-level terminal access. The compositor only talks to
// this interface so tests can run against an in-memory implementation.
type Screen interface {
	// Init enters the alternate screen buffer and hides the hardware cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes the cell buffer to the terminal and presents it.
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces a full redraw on the next Flush
	Sync()

	// PollEvent blocks until the next input event
	PollEvent() Event
}

// Event is a terminal input event
type Event interface{}

// KeyEvent is a keyboard input event
type KeyEvent struct {
	Rune rune
	Key  Key
	Ctrl bool
}

// ResizeEvent reports a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// InterruptEvent is delivered when the terminal session is interrupted
type InterruptEvent struct{}

// Key identifies non-rune keys
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)
