package events

// ShellEventKind identifies a terminal-originated semantic event
type ShellEventKind int

const (
	// ShellBell is the terminal bell (BEL or escape sequence)
	ShellBell ShellEventKind = iota

	// ShellCommandSuccess reports a shell-integration command exit with code 0
	ShellCommandSuccess

	// ShellCommandFail reports a non-zero command exit; Code carries the status
	ShellCommandFail

	// ShellFocusGained reports the surface gaining input focus
	ShellFocusGained

	// ShellFocusLost reports the surface losing input focus
	ShellFocusLost

	// ShellTitleChanged reports an OSC title update; Title carries the text
	ShellTitleChanged
)

// ShellEvent is a terminal-originated event handed to the render tick
type ShellEvent struct {
	Kind  ShellEventKind
	Code  int    // exit status for ShellCommandFail
	Title string // new title for ShellTitleChanged
}
