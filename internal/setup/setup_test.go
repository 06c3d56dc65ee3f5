package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const bishopScenario = `
name: bishop blocked
description: bishop on E4 with a pawn in the way
to_move: black
pieces:
  - {square: E4, kind: bishop, colour: white}
  - {square: F3, kind: pawn, colour: black}
  - {square: e1, kind: K, colour: white}
  - {square: e8, kind: king, colour: Black}
`

func TestParse_Pieces(t *testing.T) {
	s, err := Parse([]byte(bishopScenario))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Name, "bishop blocked")

	turn, err := s.Turn()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, turn, chess.Black)

	board, err := s.Board()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Cells(board), []string{
		"....k...",
		"........",
		"........",
		"........",
		"....B...",
		".....p..",
		"........",
		"....K...",
	})
}

func TestParse_PlacementWithOverrides(t *testing.T) {
	s, err := Parse([]byte(`
placement: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
pieces:
  - {square: E2, kind: queen, colour: white}
`))
	testutil.AssertNoError(t, err)

	board, err := s.Board()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, engine.Placement(board), "rnbqkbnr/pppppppp/8/8/8/8/PPPPQPPP/RNBQKBNR")

	white, black := board.Count()
	testutil.AssertEqual(t, []int{white, black}, []int{16, 16})

	turn, err := s.Turn()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, turn, chess.White, "default side to move")
}

func TestScenario_BoardIsFresh(t *testing.T) {
	s, err := Parse([]byte(bishopScenario))
	testutil.AssertNoError(t, err)

	first, _ := s.Board()
	first.Remove(4, 4)
	second, _ := s.Board()
	if second.Get(4, 4) == chess.NoPiece {
		t.Error("Board() shares state between calls")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad square", "pieces:\n  - {square: Z9, kind: pawn, colour: white}\n", errors.ErrInvalidNotation},
		{"bad kind", "pieces:\n  - {square: A1, kind: dragon, colour: white}\n", errors.ErrInvalidPlacement},
		{"bad colour", "pieces:\n  - {square: A1, kind: rook, colour: green}\n", errors.ErrInvalidPlacement},
		{"bad placement", "placement: 8/8\n", errors.ErrInvalidPlacement},
		{"bad side to move", "to_move: purple\n", errors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}

	if _, err := Parse([]byte("pieces: {not: a list}")); err == nil {
		t.Error("Parse() of mistyped YAML error = nil, want error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.yaml")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("placement: 4k3/8/8/8/8/8/8/4K3\n"), 0644))

	s, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Name, path, "name defaults to file name")

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestFromBoard_RoundTrip(t *testing.T) {
	board := chess.NewInitialBoard()
	board.Set(4, 4, board.Get(6, 4))

	out, err := FromBoard("after e4", board, chess.Black).Marshal()
	testutil.AssertNoError(t, err)

	s, err := Parse(out)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Name, "after e4")

	got, err := s.Board()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, testutil.Cells(got), testutil.Cells(board))

	turn, _ := s.Turn()
	testutil.AssertEqual(t, turn, chess.Black)
}

func TestParse_Moves(t *testing.T) {
	s, err := Parse([]byte("moves: [E2-E4, e7 e5, g1f3]\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Moves, []string{"E2-E4", "e7 e5", "g1f3"})

	_, err = Parse([]byte("moves: [E2]\n"))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidNotation)
}

func TestScenario_StartPlacement(t *testing.T) {
	s, err := Parse([]byte("placement: start\n"))
	testutil.AssertNoError(t, err)

	board, err := s.Board()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, engine.Placement(board), engine.InitialPlacement)
}
