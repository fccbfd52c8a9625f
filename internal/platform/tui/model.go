package tui

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model drives rounds of snake: poll, update, render, repeat.
type Model struct {
	keys     KeySource
	renderer *Renderer
	keymap   *KeyMapper
	store    *storage.Store // nil disables the round ledger
	log      *log.Logger
	config   core.RuntimeConfig
	seeder   *rand.Rand

	game       *snake.Game
	round      int
	roundStart time.Time
}

// NewModel creates a model reading keys from keys and drawing to out.
// store and logger may be nil.
func NewModel(keys KeySource, out io.Writer, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		keys:     keys,
		renderer: NewRenderer(out),
		keymap:   NewKeyMapper(),
		store:    store,
		log:      logger,
		config:   cfg,
	}
	if cfg.Seed != 0 {
		m.seeder = rand.New(rand.NewSource(cfg.Seed))
	}
	return m
}

// Run plays rounds until the player quits, input ends or ctx is cancelled.
// Reaching end of input or the quit key returns nil; cancellation returns
// ctx.Err().
func (m *Model) Run(ctx context.Context) error {
	for {
		quit, err := m.playRound(ctx)
		if err != nil || quit {
			return err
		}
	}
}

// Rounds returns the number of rounds started so far.
func (m *Model) Rounds() int {
	return m.round
}

// Game returns the current round.
func (m *Model) Game() *snake.Game {
	return m.game
}

// playRound runs one round through game over until a restart or quit.
func (m *Model) playRound(ctx context.Context) (quit bool, err error) {
	m.startRound()
	interval := tickInterval(m.config)

	for {
		if err := ctx.Err(); err != nil {
			return true, err
		}

		key, ok, err := m.keys.ReadKey(interval)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.log.Info("input closed")
				return true, nil
			}
			return true, err
		}

		var action core.Action
		if ok {
			var isQuit bool
			action, isQuit = m.keymap.MapKey(key)
			if isQuit {
				m.log.Info("quit requested", "round", m.round)
				return true, nil
			}
		}

		switch m.game.State().(type) {
		case snake.Playing:
			if ok && action.IsMovement() {
				m.game.ChangeDirection(key)
			}
			m.game.Advance()

			if _, over := m.game.State().(snake.GameOver); over {
				m.finishRound()
			} else {
				m.draw(m.renderer.DrawFrame(m.game.Snapshot()))
			}

		case snake.GameOver:
			if !ok {
				continue
			}
			if action == core.ActionRestart {
				m.log.Info("restart", "round", m.round)
				return false, nil
			}
			m.log.Debug("key ignored on game over", "key", string(key))
		}
	}
}

// startRound builds a fresh game and draws its first frame.
func (m *Model) startRound() {
	cfg := m.config
	cfg.Seed = m.nextSeed()

	if m.game == nil {
		m.game = snake.New(cfg)
	} else {
		m.game.Reset(cfg)
	}
	m.round++
	m.roundStart = time.Now()

	m.log.Info("round start", "round", m.round, "seed", cfg.Seed)
	m.draw(m.renderer.DrawFrame(m.game.Snapshot()))
}

// nextSeed keeps a zero seed zero so every round draws from the wall clock.
// A fixed seed is used as-is for the first round, later rounds take the next
// value from a generator seeded with it.
func (m *Model) nextSeed() int64 {
	if m.seeder == nil {
		return 0
	}
	if m.round == 0 {
		return m.config.Seed
	}
	return m.seeder.Int63()
}

// finishRound records the round and draws the game-over screen. Called once,
// on the tick the state machine enters GameOver.
func (m *Model) finishRound() {
	snap := m.game.Snapshot()
	view := GameOverView{Score: snap.Score}

	m.log.Info("game over", "round", m.round, "score", snap.Score, "length", len(snap.Segments), "ticks", snap.Tick)

	if m.store != nil {
		_, err := m.store.SaveRound(storage.RoundResult{
			Score:    snap.Score,
			Length:   len(snap.Segments),
			Ticks:    snap.Tick,
			Duration: time.Since(m.roundStart),
		})
		if err != nil {
			m.log.Warn("round not recorded", "error", err)
		}

		stats, err := m.store.Stats()
		if err != nil {
			m.log.Warn("stats unavailable", "error", err)
		} else {
			view.Best = stats.BestScore
			view.Rounds = stats.Rounds
		}
	}

	m.draw(m.renderer.DrawGameOver(view))
}

// draw logs a failed frame; the next tick redraws anyway.
func (m *Model) draw(err error) {
	if err != nil {
		m.log.Debug("frame dropped", "error", err)
	}
}
