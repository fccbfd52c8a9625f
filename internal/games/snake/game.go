// Package snake implements the snake game state machine: movement, food,
// collision, score and the playing/game-over transition. It has no terminal
// dependencies; the platform layer feeds it keys and renders its Snapshot.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board dimensions of the playable interior.
const (
	Width  = 40
	Height = 20
)

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// Interior is the playable region in 1-based cursor coordinates. The border
// occupies column 1, row 1, column Width+2 and row Height+2.
var Interior = core.NewRect(2, 2, Width, Height)

// Direction represents the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

// delta returns the unit step for the heading.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionForKey maps a raw key byte to a heading. w/a/s/d in either case.
func DirectionForKey(key byte) (Direction, bool) {
	switch key {
	case 'w', 'W':
		return DirUp, true
	case 's', 'S':
		return DirDown, true
	case 'a', 'A':
		return DirLeft, true
	case 'd', 'D':
		return DirRight, true
	}
	return 0, false
}

// State is the closed set of machine states: Playing or GameOver.
type State interface {
	isState()
}

// Playing is the state of a round in progress.
type Playing struct{}

// GameOver is the terminal state of a round, carrying the final score.
type GameOver struct {
	Score int
}

func (Playing) isState()  {}
func (GameOver) isState() {}

// Game is one round of snake.
type Game struct {
	rng   *rand.Rand
	tick  uint64
	state State

	snake   []core.Point // Head at index 0
	heading Direction
	food    core.Point
}

// New creates a game in the Playing state. A zero seed draws one from the
// wall clock.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.state = Playing{}

	g.snake = []core.Point{
		{X: 20, Y: 10}, // Head
		{X: 19, Y: 10},
		{X: 18, Y: 10},
	}
	g.heading = DirRight
	g.placeFood()
}

// placeFood relocates food to a random interior cell. A single draw with no
// check against the snake body, so food may land on the snake.
func (g *Game) placeFood() {
	g.food = core.Point{
		X: g.rng.Intn(Width) + 2,
		Y: g.rng.Intn(Height) + 2,
	}
}

// ChangeDirection applies a direction key. Keys other than w/a/s/d, reversals
// and input outside the Playing state are ignored. Reports whether the
// heading changed.
func (g *Game) ChangeDirection(key byte) bool {
	if _, ok := g.state.(Playing); !ok {
		return false
	}
	dir, ok := DirectionForKey(key)
	if !ok || dir == g.heading.Opposite() {
		return false
	}
	changed := dir != g.heading
	g.heading = dir
	return changed
}

// Advance moves the snake one cell along its heading, grows it when the head
// lands on food, then checks for collisions. No-op unless Playing.
func (g *Game) Advance() {
	if _, ok := g.state.(Playing); !ok {
		return
	}
	g.tick++

	dx, dy := g.heading.delta()
	head := g.snake[0].Add(dx, dy)

	g.snake = append(g.snake, core.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	if head == g.food {
		g.placeFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if g.CheckCollision() {
		g.state = GameOver{Score: g.Score()}
	}
}

// CheckCollision reports whether the head sits on the border frame or on
// another segment of the snake.
func (g *Game) CheckCollision() bool {
	head := g.snake[0]
	if !Interior.Contains(head) {
		return true
	}
	for _, seg := range g.snake[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Score is one point per food eaten.
func (g *Game) Score() int {
	return max(0, len(g.snake)-InitialLength)
}

// State returns the current machine state.
func (g *Game) State() State {
	return g.state
}

// Heading returns the current direction of travel.
func (g *Game) Heading() Direction {
	return g.heading
}

// Head returns the head segment.
func (g *Game) Head() core.Point {
	return g.snake[0]
}

// Segments returns a copy of the snake body, head first.
func (g *Game) Segments() []core.Point {
	out := make([]core.Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the current food cell.
func (g *Game) Food() core.Point {
	return g.food
}

// Ticks returns the number of advances in this round.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", g.tick, g.Score(), stateType(g.state))
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(g.snake), g.heading)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake[0].X, g.snake[0].Y, g.food.X, g.food.Y)
	return b.String()
}
