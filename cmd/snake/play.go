package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/terminal"
)

// Smallest window that shows the board, its border and the score line.
const (
	minWindowW = snake.Width + 2
	minWindowH = snake.Height + 3
)

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open the round ledger
	store, err := storage.Open()
	if err != nil {
		logger.Warn("round ledger unavailable", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	session, err := terminal.Open(os.Stdin, os.Stdout, terminal.WithLogger(logger))
	if err != nil {
		return err
	}
	// Covers panics; the explicit Restore below makes this a no-op otherwise.
	defer session.Restore()

	if w, h, err := session.Size(); err == nil && (w < minWindowW || h < minWindowH) {
		logger.Warn("terminal smaller than the board", "width", w, "height", h, "need_width", minWindowW, "need_height", minWindowH)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	model := tui.NewModel(session, os.Stdout, store, logger, cfg.Runtime())
	runErr := model.Run(ctx)

	if err := session.Restore(); err != nil {
		logger.Error("terminal restore failed", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if store != nil {
		printSummary(os.Stdout, store)
	}
	return nil
}

// loadConfig loads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the game logger. Standard output belongs to the board, so
// logs go to the configured file or nowhere.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}

// printSummary prints the session's rounds once the terminal is back to normal.
func printSummary(w io.Writer, store *storage.Store) {
	stats, err := store.Stats()
	if err != nil || stats.Rounds == 0 {
		return
	}

	// The cursor is still on the score line.
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rounds: %d  Best: %d  Average: %.1f\n", stats.Rounds, stats.BestScore, stats.AvgScore)

	rounds, err := store.TopRounds(3)
	if err != nil || len(rounds) < 2 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Length", "Time")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, r := range rounds {
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %s\n", i+1, r.Score, r.Length, r.Duration.Round(100*time.Millisecond))
	}
}
