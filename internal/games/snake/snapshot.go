package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType names a machine state for display and logging.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

func stateType(s State) GameStateType {
	switch s.(type) {
	case Playing:
		return StatePlaying
	case GameOver:
		return StateGameOver
	default:
		return ""
	}
}

// Snapshot captures the game state the renderer and tests need.
type Snapshot struct {
	Tick     uint64
	Score    int
	Segments []core.Point // Head first
	Dir      Direction
	Food     core.Point
	State    GameStateType
}

// Head returns the first segment, or the zero point for an empty snapshot.
func (s Snapshot) Head() core.Point {
	if len(s.Segments) == 0 {
		return core.Point{}
	}
	return s.Segments[0]
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.Score(),
		Segments: g.Segments(),
		Dir:      g.heading,
		Food:     g.food,
		State:    stateType(g.state),
	}
}
