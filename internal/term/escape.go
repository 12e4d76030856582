package term

import "regexp"

// Named constants for the ANSI/DEC escape sequences used during rendering.
// This is the complete terminal vocabulary of the renderer; nothing else is
// emitted.
const (
	// Synchronized output (DEC private mode 2026). Tells the terminal to
	// buffer everything between begin/end and present it atomically.
	SyncBegin = "\x1b[?2026h"
	SyncEnd   = "\x1b[?2026l"

	// Alternate screen buffer (DEC private mode 1049).
	AltScreenEnter = "\x1b[?1049h"
	AltScreenExit  = "\x1b[?1049l"

	CursorHome = "\x1b[H" // move cursor to (1,1)
	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"

	ClearScreen = "\x1b[2J" // erase visible screen

	// Reset clears all colors and text attributes.
	Reset = "\x1b[0m"
)

// ansiPattern matches CSI escape sequences, the only kind this program
// produces.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Strip removes every escape sequence from s, leaving the visible bytes.
func Strip(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
