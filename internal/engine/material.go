package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// standardMaterial is the per-side piece count of the starting position.
var standardMaterial = map[chess.Kind]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// Material counts the pieces of one colour on the board by kind.
func Material(board *chess.Board, colour chess.Colour) map[chess.Kind]int {
	counts := make(map[chess.Kind]int)
	for _, id := range board.PiecesOf(colour) {
		if p, ok := board.Piece(id); ok {
			counts[p.Kind]++
		}
	}
	return counts
}

// IsBareKing reports whether colour has nothing left on the board but its
// king. Kings are never captured, so this is the point at which a side has
// run out of material.
func IsBareKing(board *chess.Board, colour chess.Colour) bool {
	ids := board.PiecesOf(colour)
	if len(ids) != 1 {
		return false
	}
	p, _ := board.Piece(ids[0])
	return p.Kind == chess.King
}

// IsStandardMaterial reports whether both sides have exactly the material
// of the starting position, wherever it stands.
func IsStandardMaterial(board *chess.Board) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		actual := Material(board, colour)
		if len(actual) != len(standardMaterial) {
			return false
		}
		for kind, expected := range standardMaterial {
			if actual[kind] != expected {
				return false
			}
		}
	}
	return true
}
