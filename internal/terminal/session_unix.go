//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session holds the terminal in raw mode until Restore is called.
// A process should open exactly one Session on its controlling terminal.
type Session struct {
	in  *os.File
	out io.Writer
	fd  int
	log *log.Logger

	// Written once by Open before the interrupt watcher starts, read-only after.
	orig      atomic.Pointer[unix.Termios]
	origFlags int

	active      atomic.Bool
	restoreOnce sync.Once
	restoreErr  error

	sigCh chan os.Signal
	done  chan struct{}
	exit  func(code int)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Open captures the attributes of in, switches it to raw mode with signal
// generation kept on (so Ctrl-C still raises SIGINT), arms the interrupt
// watcher, makes in non-blocking and hides the cursor on out.
//
// On an interrupt the watcher restores the terminal and exits the process
// with status 0.
func Open(in *os.File, out io.Writer, opts ...Option) (*Session, error) {
	s := &Session{
		in:    in,
		out:   out,
		fd:    int(in.Fd()),
		log:   log.New(io.Discard),
		sigCh: make(chan os.Signal, 1),
		done:  make(chan struct{}),
		exit:  os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !term.IsTerminal(s.fd) {
		return nil, &TerminalError{Op: "isatty", Err: ErrNotTerminal}
	}

	orig, err := unix.IoctlGetTermios(s.fd, ioctlReadTermios)
	if err != nil {
		return nil, &TerminalError{Op: "tcgetattr", Err: err}
	}
	flags, err := unix.FcntlInt(uintptr(s.fd), unix.F_GETFL, 0)
	if err != nil {
		return nil, &TerminalError{Op: "fcntl", Err: err}
	}
	s.orig.Store(orig)
	s.origFlags = flags

	raw := makeRaw(*orig)
	if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &raw); err != nil {
		return nil, &TerminalError{Op: "tcsetattr", Err: err}
	}
	s.active.Store(true)

	signal.Notify(s.sigCh, os.Interrupt)
	go s.watchInterrupt()

	if err := unix.SetNonblock(s.fd, true); err != nil {
		s.rollback()
		return nil, &TerminalError{Op: "fcntl", Err: err}
	}

	if _, err := io.WriteString(s.out, SeqHideCursor); err != nil {
		s.log.Debug("hide cursor", "error", err)
	}

	s.log.Info("terminal session opened", "fd", s.fd)
	return s, nil
}

// makeRaw applies cfmakeraw(3) and turns ISIG back on.
func makeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	t.Lflag |= unix.ISIG
	return t
}

func (s *Session) rollback() {
	if err := s.Restore(); err != nil {
		s.log.Error("rollback terminal", "error", err)
	}
}

// watchInterrupt restores the terminal and exits on the first interrupt.
// It never touches game state.
func (s *Session) watchInterrupt() {
	select {
	case <-s.sigCh:
		if err := s.Restore(); err != nil {
			s.log.Error("restore terminal on interrupt", "error", err)
		}
		s.exit(0)
	case <-s.done:
	}
}

// Restore reapplies the captured attributes and file-status flags and shows
// the cursor. Only the first call does any work; later calls return the
// first call's result.
func (s *Session) Restore() error {
	s.restoreOnce.Do(func() {
		s.restoreErr = s.restore()
	})
	return s.restoreErr
}

func (s *Session) restore() error {
	signal.Stop(s.sigCh)
	close(s.done)

	var errs []error
	if orig := s.orig.Load(); orig != nil {
		if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, orig); err != nil {
			errs = append(errs, &TerminalError{Op: "restore", Err: err})
		}
	}
	if _, err := unix.FcntlInt(uintptr(s.fd), unix.F_SETFL, s.origFlags); err != nil {
		errs = append(errs, &TerminalError{Op: "fcntl", Err: err})
	}
	s.active.Store(false)

	if _, err := io.WriteString(s.out, SeqShowCursor); err != nil {
		s.log.Debug("show cursor", "error", err)
	}

	err := errors.Join(errs...)
	if err != nil {
		s.log.Error("terminal restore failed", "error", err)
	} else {
		s.log.Info("terminal session restored")
	}
	return err
}

// Active reports whether the terminal is currently in raw mode.
func (s *Session) Active() bool {
	return s.active.Load()
}

// Size returns the terminal dimensions in cells.
func (s *Session) Size() (width, height int, err error) {
	return term.GetSize(s.fd)
}
