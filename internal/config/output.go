package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Coordinates prints rank numbers and file letters around the board.
	Coordinates bool

	// Flip draws the board from Black's side.
	Flip bool

	// ShowHints highlights the destinations listed by the hint command.
	ShowHints bool

	// SquareSize is the edge of one square in SVG output, in pixels.
	SquareSize int
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Coordinates: true,
		ShowHints:   true,
		SquareSize:  45,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.SquareSize < 8 || d.SquareSize > 512 {
		return fmt.Errorf("square size (%d) outside 8..512: %w", d.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
