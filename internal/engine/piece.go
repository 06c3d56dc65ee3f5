// Package engine decides whether moves are legal and applies them to a board.
//
// Legality comes in two layers. Each piece kind has a geometric rule
// (CheckMove): shape of the move, path obstruction and, for the pawn, the
// capture condition. Move and Validate add the board-level rules on top:
// the piece must be on the board, the destination must not hold a piece of
// the mover's colour, and kings are never captured.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// rule is a per-kind geometric legality predicate. from is the piece's
// current square; to is already known to be on the board.
type rule func(board *chess.Board, piece chess.Piece, from, to chess.Square) bool

// ruleFor maps each kind to its predicate.
func ruleFor(kind chess.Kind) rule {
	switch kind {
	case chess.Pawn:
		return checkPawn
	case chess.Knight:
		return checkKnight
	case chess.Bishop:
		return checkBishop
	case chess.Rook:
		return checkRook
	case chess.Queen:
		return checkQueen
	case chess.King:
		return checkKing
	}
	return nil
}

// CheckMove reports whether the piece may move from its current square to
// to by its own movement rule, given the occupancy of the board. It has no
// side effects. It does not apply the king-capture prohibition; that is a
// board-level rule enforced by Validate.
//
// A piece that is not on the board, and any destination off the board, is
// never legal.
func CheckMove(board *chess.Board, id chess.PieceID, to chess.Square) bool {
	piece, ok := board.Piece(id)
	if !ok {
		return false
	}
	from, ok := board.Find(id)
	if !ok {
		return false
	}
	return checkFrom(board, piece, from, to)
}

// checkFrom runs the rule for piece as if it stood on from.
func checkFrom(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if !InBounds(to.Row, to.Col) {
		return false
	}
	if from == to {
		return false
	}
	check := ruleFor(piece.Kind)
	if check == nil {
		return false
	}
	return check(board, piece, from, to)
}

// Destinations returns every square the piece may reach by its own
// movement rule, in row-major order.
func Destinations(board *chess.Board, id chess.PieceID) []chess.Square {
	piece, ok := board.Piece(id)
	if !ok {
		return nil
	}
	from, ok := board.Find(id)
	if !ok {
		return nil
	}
	var squares []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if checkFrom(board, piece, from, to) {
				squares = append(squares, to)
			}
		}
	}
	return squares
}
