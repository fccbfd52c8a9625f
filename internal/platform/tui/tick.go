// Package tui runs the game in a raw-mode terminal: it maps keys, drives the
// update-render loop and draws frames with VT100 escape sequences.
package tui

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeySource is the loop's only suspension point. ReadKey waits at most timeout
// for one key; that wait is the frame clock, there is no other timer.
// It returns io.EOF once input is gone.
type KeySource interface {
	ReadKey(timeout time.Duration) (key byte, ok bool, err error)
}

// tickInterval returns the per-tick wait, falling back to the default cadence.
func tickInterval(cfg core.RuntimeConfig) time.Duration {
	if cfg.TickInterval <= 0 {
		return core.DefaultTickInterval
	}
	return cfg.TickInterval
}
