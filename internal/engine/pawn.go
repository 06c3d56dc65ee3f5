package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// checkPawn implements pawn movement: one square forward onto an empty
// square, two squares forward from the starting row through two empty
// squares, or one square diagonally forward onto an opposing piece.
// There is no en passant and no promotion.
func checkPawn(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	forward := chess.Forward(piece.Colour)
	dRow, dCol := delta(from, to)

	switch {
	case dCol == 0 && dRow == forward:
		return board.At(to) == chess.NoPiece

	case dCol == 0 && dRow == 2*forward:
		if from.Row != chess.StartRow(piece.Colour) {
			return false
		}
		between := chess.Sq(from.Row+forward, from.Col)
		return board.At(between) == chess.NoPiece && board.At(to) == chess.NoPiece

	case abs(dCol) == 1 && dRow == forward:
		occupant, ok := board.Occupant(to)
		return ok && occupant.Colour != piece.Colour
	}

	return false
}
