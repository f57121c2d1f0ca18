// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Starting position
	loadFile = flag.String("load", "", "Replay a saved game record before play starts")
	startFEN = flag.String("fen", "", "Start from this FEN position")

	// Rules options
	promotion = flag.String("promote", "q", "Default promotion piece: q, r, b or n")

	// Display options
	flipBoard  = flag.Bool("flip", false, "Draw the board from Black's side")
	noCoords   = flag.Bool("nocoords", false, "Don't print rank and file labels")
	squareSize = flag.Int("svg-size", config.NewDisplayConfig().SquareSize, "Square size in pixels for svg output")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	logLevel  = flag.String("log-level", "", "Log level: debug, info, warn, error (default: $CHESSRULES_LOG_LEVEL or info)")
	logFormat = flag.String("log-format", "text", "Log format: text or json")

	// Performance options
	workers = flag.Int("workers", 0, "Goroutines for legal move generation (0 = $CHESSRULES_WORKERS or 1)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags left
// at their zero value keep what NewConfig and the environment provided.
func applyFlags(cfg *config.Config) error {
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	if err := applyLogFlags(cfg); err != nil {
		return err
	}
	applyDisplayFlags(cfg)

	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.StartFEN = *startFEN
	cfg.LoadPath = *loadFile
	return cfg.Validate()
}

// applyRulesFlags configures move handling.
func applyRulesFlags(cfg *config.Config) error {
	kind, err := config.ParsePromotion(*promotion)
	if err != nil {
		return err
	}
	cfg.Promotion = kind
	return nil
}

// applyLogFlags configures the logger settings.
func applyLogFlags(cfg *config.Config) error {
	if *logLevel != "" {
		level, err := config.ParseLogLevel(*logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	format, err := config.ParseLogFormat(*logFormat)
	if err != nil {
		return err
	}
	cfg.LogFormat = format
	return nil
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Coordinates = !*noCoords
	cfg.Display.Flip = *flipBoard
	cfg.Display.SquareSize = *squareSize
}
