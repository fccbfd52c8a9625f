package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: 0,
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}
