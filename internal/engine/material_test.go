package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMaterial(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, Material(board, chess.White), map[chess.Kind]int{
		chess.Pawn: 8, chess.Knight: 2, chess.Bishop: 2, chess.Rook: 2, chess.Queen: 1, chess.King: 1,
	})
}

func TestIsBareKing(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		white     bool
		black     bool
	}{
		{"kings only", "4k3/8/8/8/8/8/8/4K3", true, true},
		{"white has a pawn", "4k3/8/8/8/8/8/4P3/4K3", false, true},
		{"black has no king", "8/8/8/8/8/8/8/4K3", true, false},
		{"lone queen is not a bare king", "3q4/8/8/8/8/8/8/4K3", true, false},
		{"initial", InitialPlacement, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromPlacement(tt.placement)
			if err != nil {
				t.Fatalf("NewBoardFromPlacement(%q) error: %v", tt.placement, err)
			}
			if got := IsBareKing(board, chess.White); got != tt.white {
				t.Errorf("IsBareKing(White) = %v, want %v", got, tt.white)
			}
			if got := IsBareKing(board, chess.Black); got != tt.black {
				t.Errorf("IsBareKing(Black) = %v, want %v", got, tt.black)
			}
		})
	}
}

func TestIsStandardMaterial(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      bool
	}{
		{"initial", InitialPlacement, true},
		{"shuffled but complete", "rnbqkbnr/pppppppp/8/8/8/2N5/PPPPPPPP/R1BQKBNR", true},
		{"missing white rook", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1", false},
		{"extra black queen", "rnbqkbnr/pppppppp/8/8/3q4/8/PPPPPPPP/RNBQKBNR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromPlacement(tt.placement)
			if err != nil {
				t.Fatalf("NewBoardFromPlacement(%q) error: %v", tt.placement, err)
			}
			if got := IsStandardMaterial(board); got != tt.want {
				t.Errorf("IsStandardMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}
