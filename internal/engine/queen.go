package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// checkQueen implements queen movement: any clear straight or diagonal line.
func checkQueen(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return slide(board, piece, from, to, true, true)
}
