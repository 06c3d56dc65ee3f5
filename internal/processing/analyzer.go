// Package processing replays and analyzes scenarios, singly or as a
// parallel batch.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/setup"
)

// Analysis holds facts about the final position of a scenario.
type Analysis struct {
	Name       string
	FinalBoard *chess.Board
	Turn       chess.Colour
	Result     game.Result
	Plies      int
	Hash       uint64

	White map[chess.Kind]int
	Black map[chess.Kind]int

	// StandardMaterial is true when both sides have the starting material
	StandardMaterial bool
	// Mobility counts the destinations available to the side to move
	Mobility int
}

// ValidationResult holds the result of replaying a scenario.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Err      error
}

// ReplayScenario builds the scenario's board and plays its moves in order,
// stopping at the first move that fails.
func ReplayScenario(s *setup.Scenario) (*game.Game, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	board, err := s.Board()
	if err != nil {
		return nil, invalid(result, 0, err)
	}
	turn, err := s.Turn()
	if err != nil {
		return nil, invalid(result, 0, err)
	}

	g := game.NewFromBoard(board, turn)
	for i, text := range s.Moves {
		ply := i + 1
		from, to, err := notation.SplitMove(text)
		if err != nil {
			return g, invalid(result, ply, err)
		}
		if _, err := g.Move(from, to); err != nil {
			return g, invalid(result, ply, fmt.Errorf("%s: %w", text, err))
		}
	}
	return g, result
}

// AnalyzeScenario replays the scenario and describes the final position.
// The analysis is nil only when the starting board could not be built.
func AnalyzeScenario(s *setup.Scenario) (*Analysis, *ValidationResult) {
	g, result := ReplayScenario(s)
	if g == nil {
		return nil, result
	}

	board := g.Board()
	return &Analysis{
		Name:             s.Name,
		FinalBoard:       board,
		Turn:             g.Turn(),
		Result:           g.Result(),
		Plies:            g.Plies(),
		Hash:             hashing.PositionHash(board, g.Turn()),
		White:            engine.Material(board, chess.White),
		Black:            engine.Material(board, chess.Black),
		StandardMaterial: engine.IsStandardMaterial(board),
		Mobility:         Mobility(board, g.Turn()),
	}, result
}

// Mobility counts every destination any piece of colour could be moved to
// under engine.Validate.
func Mobility(board *chess.Board, colour chess.Colour) int {
	count := 0
	for _, id := range board.PiecesOf(colour) {
		for _, to := range engine.Destinations(board, id) {
			if engine.Validate(board, id, to) == nil {
				count++
			}
		}
	}
	return count
}

func invalid(result *ValidationResult, ply int, err error) *ValidationResult {
	result.Valid = false
	result.ErrorPly = ply
	result.Err = err
	if ply > 0 {
		result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %v", ply, err)
	} else {
		result.ErrorMsg = err.Error()
	}
	return result
}
