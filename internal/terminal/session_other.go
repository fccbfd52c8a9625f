//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Session is unavailable on this platform; Open always fails.
type Session struct{}

// Option configures a Session.
type Option func(*Session)

// WithLogger is accepted for API compatibility.
func WithLogger(*log.Logger) Option {
	return func(*Session) {}
}

// Open reports that raw terminal mode is not supported here.
func Open(*os.File, io.Writer, ...Option) (*Session, error) {
	return nil, &TerminalError{Op: "isatty", Err: errors.ErrUnsupported}
}

func (s *Session) Restore() error { return nil }

func (s *Session) Active() bool { return false }

func (s *Session) Size() (int, int, error) { return 0, 0, errors.ErrUnsupported }

func (s *Session) ReadKey(time.Duration) (byte, bool, error) { return 0, false, io.EOF }
