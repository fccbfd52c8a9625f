// snake is a terminal snake game played on a fixed 40x20 board.
//
// Usage:
//
//	snake            - Play
//	snake keys       - Show the controls
//	snake version    - Print the version
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around a terminal board",
	Long: `Snake runs in your terminal. Steer with W/A/S/D, eat the food (*) to
grow, and avoid the walls and your own tail.

Examples:
  snake
  snake --seed 42
  snake --log-file snake.log --log-level debug
  snake keys`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)
}
