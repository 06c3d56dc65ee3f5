package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InBounds reports whether both coordinates are on the board.
func InBounds(row, col int) bool {
	return chess.InBounds(row, col)
}

// PathClear reports whether every square strictly between from and to is
// empty. It steps one unit at a time along the sign of each delta, so it is
// meant for straight and diagonal travel; any intermediate square that falls
// off the board (a misaligned pair) makes the path not clear.
func PathClear(board *chess.Board, from, to chess.Square) bool {
	dRow, dCol := delta(from, to)
	stepRow, stepCol := sign(dRow), sign(dCol)

	row, col := from.Row+stepRow, from.Col+stepCol
	for row != to.Row || col != to.Col {
		if !InBounds(row, col) {
			return false
		}
		if board.Get(row, col) != chess.NoPiece {
			return false
		}
		row += stepRow
		col += stepCol
	}
	return true
}

// isStraight reports whether the move runs along one row or one column.
func isStraight(from, to chess.Square) bool {
	dRow, dCol := delta(from, to)
	return (dRow == 0) != (dCol == 0)
}

// isDiagonal reports whether the move runs along a diagonal.
func isDiagonal(from, to chess.Square) bool {
	dRow, dCol := delta(from, to)
	return dRow != 0 && abs(dRow) == abs(dCol)
}

// notFriendly reports whether to is empty or holds a piece of the other colour.
func notFriendly(board *chess.Board, colour chess.Colour, to chess.Square) bool {
	occupant, ok := board.Occupant(to)
	return !ok || occupant.Colour != colour
}

// slide checks a sliding move restricted to the allowed line shapes.
func slide(board *chess.Board, piece chess.Piece, from, to chess.Square, straight, diagonal bool) bool {
	if !(straight && isStraight(from, to)) && !(diagonal && isDiagonal(from, to)) {
		return false
	}
	if !notFriendly(board, piece.Colour, to) {
		return false
	}
	return PathClear(board, from, to)
}
