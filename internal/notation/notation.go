// Package notation converts between board squares and their algebraic
// names ("A1" through "H8").
//
// Rank 8 is row 0 and rank 1 is row 7; file A is column 0. This matches the
// orientation of chess.Board, where Black starts on rows 0 and 1.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

const files = "ABCDEFGH"

// ParseSquare parses a square name such as "E4". The file letter is
// case-insensitive and surrounding whitespace is ignored.
func ParseSquare(s string) (chess.Square, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	if len(text) != 2 {
		return chess.Square{}, &errors.NotationError{Err: errors.ErrInvalidNotation, Input: s, Field: "length"}
	}

	col := strings.IndexByte(files, text[0])
	if col < 0 {
		return chess.Square{}, &errors.NotationError{Err: errors.ErrInvalidNotation, Input: s, Field: "file"}
	}

	rank := int(text[1] - '0')
	if rank < 1 || rank > chess.BoardSize {
		return chess.Square{}, &errors.NotationError{Err: errors.ErrInvalidNotation, Input: s, Field: "rank"}
	}

	return chess.Sq(chess.BoardSize-rank, col), nil
}

// MustParseSquare is like ParseSquare but panics on error.
// For tests and package-level tables.
func MustParseSquare(s string) chess.Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// FormatSquare returns the upper-case name of sq, or "-" if sq is off the
// board.
func FormatSquare(sq chess.Square) string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{files[sq.Col], byte('0' + chess.BoardSize - sq.Row)})
}

// ParseMove parses a from/to pair, reporting the first bad name.
func ParseMove(from, to string) (chess.Square, chess.Square, error) {
	src, err := ParseSquare(from)
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	dst, err := ParseSquare(to)
	if err != nil {
		return chess.Square{}, chess.Square{}, err
	}
	return src, dst, nil
}

// SplitMove splits move text such as "E2-E4", "e2 e4" or "e2e4" into its
// two square names. The names are not validated.
func SplitMove(text string) (from, to string, err error) {
	t := strings.TrimSpace(text)
	switch {
	case strings.ContainsAny(t, "- "):
		parts := strings.FieldsFunc(t, func(r rune) bool { return r == '-' || r == ' ' })
		if len(parts) == 2 {
			return parts[0], parts[1], nil
		}
	case len(t) == 4:
		return t[:2], t[2:], nil
	}
	return "", "", &errors.NotationError{Err: errors.ErrInvalidNotation, Input: text, Field: "move"}
}
