package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// checkKing implements king movement to any of the eight neighbouring
// squares. Moving next to or into check is not considered.
func checkKing(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	dRow, dCol := delta(from, to)
	if abs(dRow) > 1 || abs(dCol) > 1 {
		return false
	}
	return notFriendly(board, piece.Colour, to)
}
