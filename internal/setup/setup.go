// Package setup reads board scenarios from YAML.
//
// A scenario either starts from a placement string or from an empty board,
// then adds listed pieces:
//
//	name: bishop blocked
//	to_move: white
//	pieces:
//	  - {square: E4, kind: bishop, colour: white}
//	  - {square: F3, kind: pawn, colour: black}
//	moves: [E4-D5]
package setup

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// StartPlacement may be given as the placement to mean the standard
// initial position.
const StartPlacement = "start"

// Scenario is a starting position described in YAML.
type Scenario struct {
	Name        string      `yaml:"name,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Placement   string      `yaml:"placement,omitempty"`
	ToMove      string      `yaml:"to_move,omitempty"`
	Pieces      []PieceSpec `yaml:"pieces,omitempty"`

	// Moves are played from the position in order, e.g. "E2-E4".
	Moves []string `yaml:"moves,omitempty"`
}

// PieceSpec places one piece.
type PieceSpec struct {
	Square string `yaml:"square"`
	Kind   string `yaml:"kind"`
	Colour string `yaml:"colour"`
}

// Parse decodes one scenario and checks that it builds a board.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if _, err := s.Board(); err != nil {
		return nil, err
	}
	if _, err := s.Turn(); err != nil {
		return nil, err
	}
	for i, move := range s.Moves {
		if _, _, err := notation.SplitMove(move); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(filename string) (*Scenario, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", filename, err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	if s.Name == "" {
		s.Name = filename
	}
	return s, nil
}

// Board builds a fresh board for the scenario. Listed pieces are placed
// after the placement string and replace anything on their square.
func (s *Scenario) Board() (*chess.Board, error) {
	board := chess.NewBoard()
	if s.Placement != "" {
		placement := s.Placement
		if placement == StartPlacement {
			placement = engine.InitialPlacement
		}
		b, err := engine.NewBoardFromPlacement(placement)
		if err != nil {
			return nil, err
		}
		board = b
	}

	for i, spec := range s.Pieces {
		sq, err := notation.ParseSquare(spec.Square)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i+1, err)
		}
		kind, err := parseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i+1, err)
		}
		colour, err := config.ParseColour(spec.Colour)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %v: %w", i+1, err, errors.ErrInvalidPlacement)
		}
		board.Place(sq.Row, sq.Col, kind, colour)
	}
	return board, nil
}

// Turn returns the side to move, White when unset.
func (s *Scenario) Turn() (chess.Colour, error) {
	if s.ToMove == "" {
		return chess.White, nil
	}
	return config.ParseColour(s.ToMove)
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// FromBoard describes an existing board as a scenario.
func FromBoard(name string, board *chess.Board, turn chess.Colour) *Scenario {
	return &Scenario{
		Name:      name,
		Placement: engine.Placement(board),
		ToMove:    strings.ToLower(turn.String()),
	}
}

func parseKind(s string) (chess.Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, kind := range chess.Kinds {
		if strings.ToLower(kind.String()) == name {
			return kind, nil
		}
	}
	if len(name) == 1 {
		if kind := chess.KindFromLetter(name[0]); kind != chess.NoKind {
			return kind, nil
		}
	}
	return chess.NoKind, fmt.Errorf("unknown piece kind %q: %w", s, errors.ErrInvalidPlacement)
}
