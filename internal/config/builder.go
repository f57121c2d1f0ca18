package config

import (
	"io"
	"log/slog"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the move-generation worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogLevel sets the minimum log level.
func (b *ConfigBuilder) WithLogLevel(level slog.Level) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFormat selects text or JSON logs.
func (b *ConfigBuilder) WithLogFormat(format LogFormat) *ConfigBuilder {
	b.cfg.LogFormat = format
	return b
}

// WithPromotion sets the default promotion piece.
func (b *ConfigBuilder) WithPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.Promotion = kind
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLoadPath sets the game record replayed at startup.
func (b *ConfigBuilder) WithLoadPath(path string) *ConfigBuilder {
	b.cfg.LoadPath = path
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(px int) *ConfigBuilder {
	b.cfg.Display.SquareSize = px
	return b
}

// WithCoordinates controls rank and file labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
