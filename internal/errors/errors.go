// Package errors provides sentinel errors and error types for chessrules.
// Board-level move rejections are distinct sentinels so callers can report
// the exact rule that failed; inspect them with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors raised by the rules engine.
var (
	// ErrPieceNotFound indicates the piece is not on any cell.
	ErrPieceNotFound = errors.New("piece not found on the board")

	// ErrInvalidMovement indicates the piece's own movement rule rejected
	// the destination (wrong shape, blocked path, off the board).
	ErrInvalidMovement = errors.New("invalid piece movement")

	// ErrOccupiedByFriendly indicates the destination holds a piece of the
	// mover's colour.
	ErrOccupiedByFriendly = errors.New("destination occupied by own piece")

	// ErrIllegalKingCapture indicates the destination holds the opposing king.
	ErrIllegalKingCapture = errors.New("cannot capture the opponent's king")

	// ErrEmptySquare indicates a query needed a piece on an empty square.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrMalformedSquare indicates coordinates that are not a pair of
	// integers. This is a caller bug, not an illegal move.
	ErrMalformedSquare = errors.New("malformed square coordinates")
)

// Sentinel errors raised outside the rules engine.
var (
	// ErrInvalidNotation indicates a square name that is not A1..H8.
	ErrInvalidNotation = errors.New("invalid square notation")

	// ErrInvalidPlacement indicates a malformed piece-placement string.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrWrongTurn indicates a move of the side not to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrGameOver indicates an action after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrNoDrawOffer indicates a draw response with no offer pending.
	ErrNoDrawOffer = errors.New("no draw offer pending")

	// ErrPositionNotFound indicates a saved position name that does not exist.
	ErrPositionNotFound = errors.New("saved position not found")
)

// MoveError wraps a move rejection with the piece and squares involved.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying sentinel
	Piece string // Description of the moving piece, e.g. "White Rook"
	From  string // Source square (empty if the piece is not on the board)
	To    string // Destination square
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s -> %s", e.From, e.To))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("to %s", e.To))
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move rejected"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// NotationError records a square name that could not be parsed.
type NotationError struct {
	Err   error  // The underlying error
	Input string // The text as given
	Field string // Which part was wrong ("file", "rank", "length")
}

// Error returns a formatted error message with the offending input.
func (e *NotationError) Error() string {
	msg := fmt.Sprintf("%q", e.Input)
	if e.Field != "" {
		msg += fmt.Sprintf(": bad %s", e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// IsRuleRejection reports whether err is one of the four board-level move
// rejections, as opposed to malformed input or a game-flow error.
func IsRuleRejection(err error) bool {
	return errors.Is(err, ErrPieceNotFound) ||
		errors.Is(err, ErrInvalidMovement) ||
		errors.Is(err, ErrOccupiedByFriendly) ||
		errors.Is(err, ErrIllegalKingCapture)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
