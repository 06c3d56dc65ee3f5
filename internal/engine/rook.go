package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// checkRook implements rook movement along a clear row or column.
func checkRook(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return slide(board, piece, from, to, true, false)
}
