package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialPlacement is the FEN piece-placement field of the standard
// starting position. Only the placement field is used: side to move,
// castling, en passant and clocks have no meaning to this engine.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// NewBoardFromPlacement creates a board from a FEN piece-placement field.
// The first rank listed is row 0. A full FEN string is accepted; fields
// after the first are ignored.
func NewBoardFromPlacement(placement string) (*chess.Board, error) {
	parts := strings.Fields(placement)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty placement: %w", errors.ErrInvalidPlacement)
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("%d ranks, want %d: %w", len(rows), chess.BoardSize, errors.ErrInvalidPlacement)
	}

	board := chess.NewBoard()
	for row, text := range rows {
		if err := parseRow(board, row, text); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// parseRow places the pieces of one placement rank on the given row.
func parseRow(board *chess.Board, row int, text string) error {
	col := 0
	for _, c := range text {
		switch {
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidPlacement)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("row %d overflows: %w", row, errors.ErrInvalidPlacement)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Place(row, col, kind, colour)
			col++
		}
	}
	if col != chess.BoardSize {
		return fmt.Errorf("row %d has %d squares: %w", row, col, errors.ErrInvalidPlacement)
	}
	return nil
}

// Placement renders the board as a FEN piece-placement field.
func Placement(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := board.Occupant(chess.Sq(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
