package core

import "time"

// DefaultTickInterval is the bounded wait of one main loop iteration.
// With no key pressed the game advances about 20 times per second.
const DefaultTickInterval = 50 * time.Millisecond

// RuntimeConfig contains configuration passed to the game loop at start.
type RuntimeConfig struct {
	TickInterval time.Duration // Upper bound of the per-tick key wait
	Seed         int64         // RNG seed for food placement, 0 means wall-clock time
}

// DefaultConfig returns a RuntimeConfig with the fixed game cadence.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval: DefaultTickInterval,
		Seed:         0,
	}
}
