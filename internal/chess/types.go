// Package chess provides core chess types and the board grid.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the closed set of piece types.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// Kinds lists every real piece kind in back-rank-independent order.
var Kinds = []Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// Piece is the immutable identity of a chess unit.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// PieceID identifies a piece in a board's arena. NoPiece marks an empty cell.
type PieceID int

// NoPiece is the empty-cell value.
const NoPiece PieceID = 0

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// Rows a pawn of each colour starts on.
	WhitePawnRow = 6
	BlackPawnRow = 1

	// Back ranks.
	WhiteBackRow = 7
	BlackBackRow = 0
)

// Square is a (row, col) pair. Row 0 is Black's back rank, row 7 White's.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// NewSquare builds a square from untyped coordinates, as handed over by
// callers that do not hold a Square. Anything other than exactly two
// integers is a malformed coordinate, which is a caller bug rather than an
// illegal move.
func NewSquare(coords ...int) (Square, error) {
	if len(coords) != 2 {
		return Square{}, malformedSquare(len(coords))
	}
	return Square{Row: coords[0], Col: coords[1]}, nil
}

// String returns the square as "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

func malformedSquare(n int) error {
	return fmt.Errorf("want 2 coordinates, got %d: %w", n, errors.ErrMalformedSquare)
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Location is where a piece is: either OnBoard at a square, or Captured.
// The interface is sealed; type-switch on the two variants.
type Location interface {
	isLocation()
}

// OnBoard is the location of a piece that occupies a cell.
type OnBoard struct {
	Square Square
}

// Captured is the location of a piece that has left the board. It carries
// no coordinates.
type Captured struct{}

func (OnBoard) isLocation()  {}
func (Captured) isLocation() {}

// StartRow returns the row a pawn of the given colour starts on.
func StartRow(colour Colour) int {
	if colour == White {
		return WhitePawnRow
	}
	return BlackPawnRow
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}
