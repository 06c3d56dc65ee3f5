package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// delta returns the row and column displacement from one square to another.
func delta(from, to chess.Square) (dRow, dCol int) {
	return to.Row - from.Row, to.Col - from.Col
}
