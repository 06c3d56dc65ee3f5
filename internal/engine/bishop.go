package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// checkBishop implements bishop movement along a clear diagonal.
func checkBishop(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return slide(board, piece, from, to, false, true)
}
