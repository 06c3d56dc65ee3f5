package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Capture describes a successful move.
type Capture struct {
	From, To chess.Square
	// Captured is the piece taken off the board, or NoPiece.
	Captured chess.PieceID
}

// Validate checks a move against every rule without touching the board.
// It returns a *errors.MoveError wrapping one of ErrPieceNotFound,
// ErrInvalidMovement, ErrOccupiedByFriendly or ErrIllegalKingCapture,
// checked in that order.
func Validate(board *chess.Board, id chess.PieceID, to chess.Square) error {
	_, err := validate(board, id, to)
	return err
}

// validate returns the mover's square when the move is legal.
func validate(board *chess.Board, id chess.PieceID, to chess.Square) (chess.Square, error) {
	piece, known := board.Piece(id)
	from, ok := board.Find(id)
	if !ok {
		return chess.Square{}, moveError(errors.ErrPieceNotFound, piece, known, nil, to)
	}

	if !checkFrom(board, piece, from, to) {
		return from, moveError(errors.ErrInvalidMovement, piece, true, &from, to)
	}

	target, occupied := board.Occupant(to)
	if occupied && target.Colour == piece.Colour {
		return from, moveError(errors.ErrOccupiedByFriendly, piece, true, &from, to)
	}

	if occupied && target.Kind == chess.King {
		return from, moveError(errors.ErrIllegalKingCapture, piece, true, &from, to)
	}

	return from, nil
}

// Move validates and then applies a move. On any error the board is left
// exactly as it was. On success the mover occupies to, its old square is
// empty, and any piece that stood on to is off the board.
func Move(board *chess.Board, id chess.PieceID, to chess.Square) (Capture, error) {
	from, err := validate(board, id, to)
	if err != nil {
		return Capture{}, err
	}

	captured := board.At(to)
	board.Remove(from.Row, from.Col)
	board.Set(to.Row, to.Col, id)

	return Capture{From: from, To: to, Captured: captured}, nil
}

func moveError(err error, piece chess.Piece, known bool, from *chess.Square, to chess.Square) *errors.MoveError {
	me := &errors.MoveError{Err: err, To: to.String()}
	if known {
		me.Piece = piece.String()
	}
	if from != nil {
		me.From = from.String()
	}
	return me
}
