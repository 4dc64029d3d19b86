package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/audio"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W   - Flap
  R            - Reset (any time)
  Mouse click  - Reset button, top left
  ?            - Toggle full help
  Q/Esc/Ctrl+C - Quit

Examples:
  flappy play
  flappy play --sound
  flappy play --seed 42 --fps 60
  flappy play --assets ./imgs --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	// Root runs play too, so the flag lives on both
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs would scribble over the alt screen, so they go to a file or nowhere
	out, closeLog, err := openLogFile(flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, "flappy", flagLogLevel, flagLogFormat)
	if err != nil {
		return err
	}

	cfg, sheet, err := loadGame(logger)
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound := audio.New(flagSound, logger)

	return tui.Run(tui.Options{
		Config: cfg,
		Assets: sheet,
		Seed:   flagSeed,
		Sound:  sound,
		Logger: logger,
		Width:  width,
		Height: height,
	})
}
