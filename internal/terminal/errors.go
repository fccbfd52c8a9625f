// Package terminal owns the controlling terminal for the lifetime of the game:
// raw mode entry and exit, non-blocking stdin, interrupt handling, cursor
// visibility and the bounded-wait single key read that paces the main loop.
package terminal

import (
	"errors"
	"fmt"
)

// Escape sequences for cursor visibility.
const (
	SeqHideCursor = "\x1b[?25l"
	SeqShowCursor = "\x1b[?25h"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TerminalError reports a failed terminal attribute or mode operation.
// Op is one of "isatty", "tcgetattr", "tcsetattr", "fcntl", "poll" or "restore".
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}
