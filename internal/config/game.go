package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameConfig holds settings for starting a game.
type GameConfig struct {
	// Placement is the FEN piece-placement field of the starting position
	Placement string `yaml:"placement"`

	// FirstToMove is "white" or "black"
	FirstToMove string `yaml:"first_to_move"`

	// Setup names a YAML scenario file; it overrides Placement
	Setup string `yaml:"setup"`
}

// NewGameConfig creates a GameConfig for the standard starting position.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Placement:   engine.InitialPlacement,
		FirstToMove: "white",
	}
}

// Validate checks that the placement parses and the side is known.
func (g *GameConfig) Validate() error {
	if _, err := engine.NewBoardFromPlacement(g.Placement); err != nil {
		return fmt.Errorf("game placement: %v: %w", err, errors.ErrInvalidConfig)
	}
	if _, err := g.Turn(); err != nil {
		return err
	}
	return nil
}

// Turn returns FirstToMove as a colour.
func (g *GameConfig) Turn() (chess.Colour, error) {
	return ParseColour(g.FirstToMove)
}

// ParseColour parses "white" or "black", case-insensitively.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidConfig)
}
