package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Colour enables ANSI colouring of the two sides
	Colour bool `yaml:"colour"`

	// Unicode draws pieces as chess glyphs instead of letters
	Unicode bool `yaml:"unicode"`

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool `yaml:"coordinates"`

	// Empty is the character drawn on an empty square
	Empty string `yaml:"empty"`
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:      true,
		Unicode:     true,
		Coordinates: true,
		Empty:       ".",
	}
}

// Validate checks that the display configuration is usable.
func (d *DisplayConfig) Validate() error {
	if len([]rune(d.Empty)) != 1 {
		return fmt.Errorf("empty square marker %q must be one character: %w", d.Empty, errors.ErrInvalidConfig)
	}
	return nil
}
