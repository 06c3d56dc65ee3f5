package notation

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input string
		want  chess.Square
	}{
		{"A8", chess.Sq(0, 0)},
		{"H8", chess.Sq(0, 7)},
		{"A1", chess.Sq(7, 0)},
		{"H1", chess.Sq(7, 7)},
		{"E2", chess.Sq(6, 4)},
		{"e4", chess.Sq(4, 4)},
		{" d5 ", chess.Sq(3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	tests := []struct {
		input string
		field string
	}{
		{"", "length"},
		{"E", "length"},
		{"E10", "length"},
		{"I4", "file"},
		{"44", "file"},
		{"E0", "rank"},
		{"E9", "rank"},
		{"EE", "rank"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSquare(tt.input)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)

			notationErr, ok := err.(*errors.NotationError)
			if !ok {
				t.Fatalf("ParseSquare(%q) error type = %T, want *NotationError", tt.input, err)
			}
			if notationErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", notationErr.Field, tt.field)
			}
		})
	}
}

func TestFormatSquare(t *testing.T) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			name := FormatSquare(sq)
			got, err := ParseSquare(name)
			if err != nil || got != sq {
				t.Errorf("ParseSquare(FormatSquare(%v)) = %v, %v; want %v", sq, got, err, sq)
			}
		}
	}

	testutil.AssertEqual(t, FormatSquare(chess.Sq(4, 4)), "E4")
	testutil.AssertEqual(t, FormatSquare(chess.Sq(8, 0)), "-")
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("e2", "E4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, []chess.Square{from, to}, []chess.Square{chess.Sq(6, 4), chess.Sq(4, 4)})

	_, _, err = ParseMove("e2", "z9")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
	testutil.AssertContains(t, err.Error(), "z9")
}

func TestMustParseSquare_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSquare(\"Q7\") did not panic")
		}
	}()
	MustParseSquare("Q7")
}

func TestSplitMove(t *testing.T) {
	tests := []struct {
		input    string
		from, to string
		wantErr  bool
	}{
		{"E2-E4", "E2", "E4", false},
		{"e2 e4", "e2", "e4", false},
		{"g1f3", "g1", "f3", false},
		{" b8 - c6 ", "b8", "c6", false},
		{"e2", "", "", true},
		{"e2-e4-e6", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			from, to, err := SplitMove(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
				return
			}
			testutil.AssertNoError(t, err)
			if from != tt.from || to != tt.to {
				t.Errorf("SplitMove(%q) = %q, %q; want %q, %q", tt.input, from, to, tt.from, tt.to)
			}
		})
	}
}
