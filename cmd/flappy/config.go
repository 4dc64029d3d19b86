package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the tuning the game would run with, after the config search
(--config, ~/.flappy/flappy.yaml, ./configs/flappy.yaml, built-in defaults)
and command-line overrides. The output is valid input for --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printConfig(cmd.OutOrStdout())
	},
}

func printConfig(w io.Writer) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := applyOverrides(&cfg, flagFPS); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	// Source goes to stderr so stdout stays loadable YAML
	if _, err := io.WriteString(os.Stderr, "# source: "+source+"\n"); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
