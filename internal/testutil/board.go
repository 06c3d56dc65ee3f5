package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustBoard builds a board from an 8-line diagram, row 0 first. Each line
// has 8 characters: '.' for an empty square, a piece letter otherwise
// (uppercase White, lowercase Black). Spaces are ignored so diagrams can be
// aligned. It calls t.Fatal on a malformed diagram.
func MustBoard(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	board := chess.NewBoard()
	for row, line := range rows {
		col := 0
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c == ' ' {
				continue
			}
			if col >= chess.BoardSize {
				t.Fatalf("diagram row %d is longer than %d squares: %q", row, chess.BoardSize, line)
			}
			if c != '.' {
				kind := chess.KindFromLetter(c)
				if kind == chess.NoKind {
					t.Fatalf("diagram row %d: unknown piece %q", row, c)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Place(row, col, kind, colour)
			}
			col++
		}
		if col != chess.BoardSize {
			t.Fatalf("diagram row %d has %d squares, want %d: %q", row, col, chess.BoardSize, line)
		}
	}
	return board
}

// MustPiece returns the ID of the piece on sq, failing the test if the
// square is empty.
func MustPiece(t testing.TB, board *chess.Board, sq chess.Square) chess.PieceID {
	t.Helper()
	id := board.At(sq)
	if id == chess.NoPiece {
		t.Fatalf("no piece at %v", sq)
	}
	return id
}

// Cells returns the grid as row strings in MustBoard's diagram format,
// for comparing whole boards with AssertEqual.
func Cells(board *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			line[col] = '.'
			if p, ok := board.Occupant(chess.Sq(row, col)); ok {
				line[col] = p.Letter()
			}
		}
		rows[row] = string(line)
	}
	return rows
}
