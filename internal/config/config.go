// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Environment variables consulted by FromEnv.
const (
	EnvWorkers  = "CHESSRULES_WORKERS"
	EnvLogLevel = "CHESSRULES_LOG_LEVEL"
)

// LogFormat selects the slog handler.
type LogFormat int

const (
	TextLog LogFormat = iota
	JSONLog
)

// String returns the flag spelling of a log format.
func (f LogFormat) String() string {
	if f == JSONLog {
		return "json"
	}
	return "text"
}

// ParseLogFormat accepts "text" or "json".
func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return TextLog, nil
	case "json":
		return JSONLog, nil
	}
	return TextLog, fmt.Errorf("log format %q: %w", s, errors.ErrInvalidConfig)
}

// ParseLogLevel accepts debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, errors.ErrInvalidConfig)
	}
	return level, nil
}

// ParsePromotion accepts a piece letter or name a pawn may promote to.
func ParsePromotion(s string) (chess.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var kind chess.Kind
	switch {
	case len(s) == 1:
		kind = chess.KindFromLetter(s[0])
	default:
		for k := chess.Knight; k <= chess.Queen; k++ {
			if k.String() == s {
				kind = k
			}
		}
	}
	if kind < chess.Knight || kind > chess.Queen {
		return chess.NoKind, fmt.Errorf("promotion piece %q: %w", s, errors.ErrInvalidConfig)
	}
	return kind, nil
}

// Config holds all settings for a chessrules session.
type Config struct {
	// Workers is the number of goroutines used to enumerate legal moves.
	Workers int

	LogLevel  slog.Level
	LogFormat LogFormat

	// Promotion is the piece a pawn becomes when a move does not name one.
	Promotion chess.Kind

	// StartFEN, when set, replaces the standard starting position.
	StartFEN string

	// LoadPath names a game record replayed before play starts.
	LoadPath string

	Display *DisplayConfig

	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers:    1,
		LogLevel:   slog.LevelInfo,
		LogFormat:  TextLog,
		Promotion:  chess.Queen,
		Display:    NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// FromEnv overrides fields whose environment variable is set. lookup is
// usually os.Getenv.
func (c *Config) FromEnv(lookup func(string) string) error {
	if v := lookup(EnvWorkers); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v := lookup(EnvLogLevel); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		c.LogLevel = level
	}
	return nil
}

// SetOutput sets the writer boards and replies are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Promotion < chess.Knight || c.Promotion > chess.Queen {
		return fmt.Errorf("cannot promote to %v: %w", c.Promotion, errors.ErrInvalidConfig)
	}
	if c.LogFormat != TextLog && c.LogFormat != JSONLog {
		return fmt.Errorf("unknown log format %d: %w", c.LogFormat, errors.ErrInvalidConfig)
	}
	if c.Display != nil {
		return c.Display.Validate()
	}
	return nil
}

// Logger builds a logger writing to LogFile at LogLevel.
func (c *Config) Logger() *slog.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == JSONLog {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
