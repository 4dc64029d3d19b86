package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/config"
)

// newLogger builds a logger writing to w with the level and format flags.
func newLogger(w io.Writer, prefix, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var formatter log.Formatter
	switch strings.ToLower(format) {
	case "", "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text, json or logfmt", format)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
		Formatter:       formatter,
	}), nil
}

// openLogFile returns the writer for --log-file, or fallback when it is
// empty. The returned close function is always safe to call.
func openLogFile(path string, fallback io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return fallback, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// loadGame resolves the tuning and the sprites from the global flags.
func loadGame(logger *log.Logger) (config.FlappyConfig, *assets.Assets, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	if err := applyOverrides(&cfg, flagFPS); err != nil {
		return cfg, nil, err
	}
	logger.Info("config loaded", "source", source, "tick_rate", cfg.TickRate)

	sheet, err := assets.Load(flagAssets)
	if err != nil {
		return cfg, nil, err
	}
	if flagAssets != "" {
		logger.Info("sprites loaded", "dir", flagAssets)
	}
	return cfg, sheet, nil
}

// applyOverrides applies command-line overrides and revalidates.
func applyOverrides(cfg *config.FlappyConfig, fps int) error {
	if fps != 0 {
		cfg.TickRate = fps
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
