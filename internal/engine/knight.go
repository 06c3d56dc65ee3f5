package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// knightOffsets are the eight L-shaped jumps.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// checkKnight implements knight movement. Knights jump, so only the
// destination's occupant matters.
func checkKnight(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	dRow, dCol := delta(from, to)
	for _, off := range knightOffsets {
		if dRow == off[0] && dCol == off[1] {
			return notFriendly(board, piece.Colour, to)
		}
	}
	return false
}
