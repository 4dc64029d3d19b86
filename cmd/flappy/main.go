// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective tuning as YAML
//
// Global flags:
//
//	--config <path>      - Tuning YAML (default: ~/.flappy/flappy.yaml, ./configs/flappy.yaml)
//	--fps <rate>         - Override the tick rate (default from config: 30)
//	--seed <value>       - Set RNG seed for reproducible pipes
//	--assets <dir>       - Load bird1.png ... bg.png from a directory
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagSeed      int64
	flagAssets    string
	flagLogFile   string
	flagLogLevel  string
	flagLogFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through the pipes in your terminal",
	Long: `Flappy is a terminal Flappy Bird. The bird falls under gravity, each
flap gives it a short lift, and every pipe passed scores a point. Touching
a pipe or the ground ends the run.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy config > ~/.flappy/flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with bird1..3, pipe, base and bg PNG sprites (empty = built-in art)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text, json, logfmt")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
