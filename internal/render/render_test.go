package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func plain() *config.DisplayConfig {
	cfg := config.NewDisplayConfig()
	cfg.Colour = false
	cfg.Unicode = false
	return cfg
}

func TestRenderer_InitialBoard(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, plain())

	testutil.AssertNoError(t, r.Board(chess.NewInitialBoard()))

	want := strings.Join([]string{
		"  A B C D E F G H",
		"  ----------------",
		"8|r n b q k b n r |8",
		"7|p p p p p p p p |7",
		"6|. . . . . . . . |6",
		"5|. . . . . . . . |5",
		"4|. . . . . . . . |4",
		"3|. . . . . . . . |3",
		"2|P P P P P P P P |2",
		"1|R N B Q K B N R |1",
		"  ----------------",
		"  A B C D E F G H",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderer_NoCoordinates(t *testing.T) {
	cfg := plain()
	cfg.Coordinates = false
	cfg.Empty = "-"

	board := chess.NewBoard()
	board.Place(0, 0, chess.King, chess.Black)
	board.Place(7, 7, chess.King, chess.White)

	got := New(nil, cfg).String(board)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	testutil.AssertEqual(t, len(lines), chess.BoardSize)
	testutil.AssertEqual(t, lines[0], "k - - - - - - - ")
	testutil.AssertEqual(t, lines[7], "- - - - - - - K ")
}

func TestRenderer_Glyph(t *testing.T) {
	cfg := plain()
	cfg.Unicode = true
	r := New(nil, cfg)

	tests := []struct {
		piece chess.Piece
		want  string
	}{
		{chess.Piece{Kind: chess.King, Colour: chess.White}, "♔"},
		{chess.Piece{Kind: chess.Knight, Colour: chess.Black}, "♞"},
		{chess.Piece{Kind: chess.Pawn, Colour: chess.Black}, "♟"},
	}
	for _, tt := range tests {
		if got := r.Glyph(tt.piece); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.piece, got, tt.want)
		}
	}

	cfg.Unicode = false
	if got := r.Glyph(chess.Piece{Kind: chess.Queen, Colour: chess.Black}); got != "q" {
		t.Errorf("Glyph(Black Queen) without unicode = %q, want %q", got, "q")
	}
}

func TestRenderer_Colour(t *testing.T) {
	cfg := plain()
	cfg.Colour = true
	board := chess.NewBoard()
	board.Place(4, 4, chess.Queen, chess.White)

	got := New(nil, cfg).String(board)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("coloured output has no escape sequences: %q", got)
	}

	cfg.Colour = false
	got = New(nil, cfg).String(board)
	if strings.Contains(got, "\x1b[") {
		t.Errorf("plain output has escape sequences: %q", got)
	}
}
