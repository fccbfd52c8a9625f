//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// ReadKey waits up to timeout for stdin to become readable and then reads a
// single byte. ok is false when nothing arrived in time. err is io.EOF once
// the terminal has gone away. It never waits past timeout.
func (s *Session) ReadKey(timeout time.Duration) (key byte, ok bool, err error) {
	ready, err := s.PollReadable(timeout)
	if err != nil {
		return 0, false, err
	}
	if !ready {
		return 0, false, nil
	}
	return s.ReadPending()
}

// PollReadable blocks for at most timeout until stdin has input or hangs up.
func (s *Session) PollReadable(timeout time.Duration) (bool, error) {
	deadline := time.Now().Add(timeout)
	fds := []unix.PollFd{
		{Fd: int32(s.fd), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, remainingMillis(deadline))
		if err == unix.EINTR {
			if time.Now().Before(deadline) {
				continue
			}
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if n == 0 {
			return false, nil
		}
		if fds[0].Revents&unix.POLLNVAL != 0 {
			return false, &TerminalError{Op: "poll", Err: unix.EBADF}
		}
		return fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
	}
}

func remainingMillis(deadline time.Time) int {
	d := time.Until(deadline)
	if d <= 0 {
		return 0
	}
	ms := int(d.Milliseconds())
	if ms == 0 {
		ms = 1
	}
	return ms
}

// ReadPending reads one byte without blocking. ok is false when no byte was
// waiting.
func (s *Session) ReadPending() (key byte, ok bool, err error) {
	var buf [1]byte
	n, err := unix.Read(s.fd, buf[:])
	switch {
	case err == unix.EAGAIN || err == unix.EINTR:
		return 0, false, nil
	case err == unix.EIO:
		// Linux reports a hung-up pty this way.
		return 0, false, io.EOF
	case err != nil:
		return 0, false, err
	case n == 0:
		return 0, false, io.EOF
	}
	return buf[0], true, nil
}
