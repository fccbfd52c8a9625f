// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the top-level configuration file.
type Config struct {
	Seed int64     `yaml:"seed"` // 0 = seed each round from the wall clock
	Log  LogConfig `yaml:"log"`
}

// LogConfig controls where and how much the game logs.
type LogConfig struct {
	File  string `yaml:"file"`  // Empty discards logs
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks values the YAML decoder cannot.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

// Runtime converts the file settings into game runtime settings.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = c.Seed
	return rc
}
