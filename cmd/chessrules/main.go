// chessrules is an interactive two-player chess board that enforces the rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/record"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog := setupLogFile(cfg)
	defer closeLog()

	logger := cfg.Logger()
	opts := engineOptions(cfg, logger)

	game, err := newGame(cfg, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newSession(cfg, game, opts, logger).run(os.Stdin); err != nil {
		logger.Error("reading commands", "error", err)
		os.Exit(1)
	}
}

// buildConfig layers defaults, environment and flags.
func buildConfig(getenv func(string) string) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := cfg.FromEnv(getenv); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile points the log at the -l file when given. The returned
// function closes it.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() }
}

func engineOptions(cfg *config.Config, logger *slog.Logger) []engine.Option {
	return []engine.Option{
		engine.WithWorkers(cfg.Workers),
		engine.WithLogger(logger.With("package", "engine")),
	}
}

// newGame builds the starting game: a replayed record, a FEN position or
// the standard opening position, in that order of preference.
func newGame(cfg *config.Config, opts []engine.Option, logger *slog.Logger) (*engine.Game, error) {
	switch {
	case cfg.LoadPath != "":
		if cfg.StartFEN != "" {
			logger.Warn("ignoring -fen because -load was given", "path", cfg.LoadPath)
		}
		return record.Load(cfg.LoadPath, opts...)
	case cfg.StartFEN != "":
		return engine.NewGameFromFEN(cfg.StartFEN, opts...)
	default:
		return engine.NewGame(opts...), nil
	}
}

func usage() {
	printUsage(os.Stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(w, "Play chess at the terminal with every move checked against the rules.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	fmt.Fprintf(w, "  %-22s default for -workers\n", config.EnvWorkers)
	fmt.Fprintf(w, "  %-22s default for -log-level\n", config.EnvLogLevel)
	fmt.Fprintf(w, "\nType help at the prompt for the list of commands.\n")
}
