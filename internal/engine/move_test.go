package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMove_BishopScenario(t *testing.T) {
	t.Run("open diagonal", func(t *testing.T) {
		board := chess.NewBoard()
		bishop := board.Place(4, 4, chess.Bishop, chess.White)

		got, err := Move(board, bishop, chess.Sq(6, 6))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, Capture{From: chess.Sq(4, 4), To: chess.Sq(6, 6)})
	})

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		t.Run("blocked by "+colour.String(), func(t *testing.T) {
			board := chess.NewBoard()
			bishop := board.Place(4, 4, chess.Bishop, chess.White)
			board.Place(5, 5, chess.Pawn, colour)

			_, err := Move(board, bishop, chess.Sq(6, 6))
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMovement)
		})
	}
}

func TestMove_PawnScenario(t *testing.T) {
	board := chess.NewBoard()
	pawn := board.Place(6, 4, chess.Pawn, chess.White)

	_, err := Move(board, pawn, chess.Sq(4, 4))
	testutil.AssertNoError(t, err, "two-step from start row")

	board.Set(5, 4, pawn)
	_, err = Move(board, pawn, chess.Sq(3, 4))
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMovement, "two-step after relocation")
}

func TestMove_KingScenario(t *testing.T) {
	tests := []struct {
		name    string
		target  chess.Piece
		wantErr error
	}{
		{"capture black piece", chess.Piece{Kind: chess.Rook, Colour: chess.Black}, nil},
		{"capture white piece", chess.Piece{Kind: chess.Rook, Colour: chess.White}, chesserrors.ErrInvalidMovement},
		{"capture black king", chess.Piece{Kind: chess.King, Colour: chess.Black}, chesserrors.ErrIllegalKingCapture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.NewBoard()
			king := board.Place(4, 4, chess.King, chess.White)
			target := board.Place(3, 4, tt.target.Kind, tt.target.Colour)

			_, err := Move(board, king, chess.Sq(3, 4))
			if tt.wantErr == nil {
				testutil.AssertNoError(t, err)
				if _, ok := board.Locate(target).(chess.Captured); !ok {
					t.Errorf("Locate(target) = %#v, want Captured", board.Locate(target))
				}
				return
			}
			testutil.AssertErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("king predicate alone accepts the enemy king", func(t *testing.T) {
		board := chess.NewBoard()
		king := board.Place(4, 4, chess.King, chess.White)
		board.Place(3, 4, chess.King, chess.Black)
		if !CheckMove(board, king, chess.Sq(3, 4)) {
			t.Error("CheckMove() = false, want true")
		}
	})
}

func TestMove_KingCaptureByAnyPiece(t *testing.T) {
	board := testutil.MustBoard(t,
		"....k...",
		"...P....",
		"........",
		"........",
		"....R...",
		"........",
		"........",
		"........",
	)
	for _, from := range []chess.Square{chess.Sq(1, 3), chess.Sq(4, 4)} {
		id := testutil.MustPiece(t, board, from)
		if !CheckMove(board, id, chess.Sq(0, 4)) {
			t.Fatalf("CheckMove(%v -> (0,4)) = false, want true", from)
		}
		testutil.AssertErrorIs(t, Validate(board, id, chess.Sq(0, 4)), chesserrors.ErrIllegalKingCapture)
	}
}

func TestMove_Errors(t *testing.T) {
	t.Run("piece not on board", func(t *testing.T) {
		board := chess.NewBoard()
		id := board.Add(chess.Rook, chess.White)
		_, err := Move(board, id, chess.Sq(0, 0))
		testutil.AssertErrorIs(t, err, chesserrors.ErrPieceNotFound)

		var moveErr *chesserrors.MoveError
		if !errors.As(err, &moveErr) {
			t.Fatalf("error %v is not a *MoveError", err)
		}
		testutil.AssertEqual(t, moveErr.Piece, "White Rook")
		testutil.AssertEqual(t, moveErr.From, "")
	})

	t.Run("captured piece", func(t *testing.T) {
		board := chess.NewBoard()
		rook := board.Place(0, 0, chess.Rook, chess.White)
		victim := board.Place(0, 5, chess.Knight, chess.Black)
		_, err := Move(board, rook, chess.Sq(0, 5))
		testutil.AssertNoError(t, err)

		_, err = Move(board, victim, chess.Sq(2, 4))
		testutil.AssertErrorIs(t, err, chesserrors.ErrPieceNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		board := chess.NewBoard()
		_, err := Move(board, chess.PieceID(5), chess.Sq(0, 0))
		testutil.AssertErrorIs(t, err, chesserrors.ErrPieceNotFound)
	})

	t.Run("off board destination", func(t *testing.T) {
		board := chess.NewBoard()
		queen := board.Place(0, 0, chess.Queen, chess.White)
		_, err := Move(board, queen, chess.Sq(-1, -1))
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMovement)
	})

	t.Run("wrong shape onto own piece", func(t *testing.T) {
		board := chess.NewInitialBoard()
		rook := testutil.MustPiece(t, board, chess.Sq(7, 0))
		err := Validate(board, rook, chess.Sq(6, 1))
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidMovement)
		testutil.AssertFalse(t, errors.Is(err, chesserrors.ErrOccupiedByFriendly))
	})

	t.Run("king onto own rook", func(t *testing.T) {
		board := chess.NewBoard()
		king := board.Place(4, 4, chess.King, chess.White)
		board.Place(3, 4, chess.Rook, chess.White)
		testutil.AssertErrorIs(t, Validate(board, king, chess.Sq(3, 4)), chesserrors.ErrInvalidMovement)
	})

	t.Run("message names the move", func(t *testing.T) {
		board := chess.NewBoard()
		knight := board.Place(7, 1, chess.Knight, chess.White)
		_, err := Move(board, knight, chess.Sq(5, 1))
		testutil.AssertContains(t, err.Error(), "White Knight (7,1) -> (5,1)")
		testutil.AssertTrue(t, chesserrors.IsRuleRejection(err))
	})
}

// TestMove_AllOrNothing verifies that every rejected move leaves the grid
// untouched, and every accepted one changes only the two squares involved.
func TestMove_AllOrNothing(t *testing.T) {
	board := chess.NewInitialBoard()

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, id := range board.PiecesOf(colour) {
			from, _ := board.Find(id)
			for row := -1; row <= chess.BoardSize; row++ {
				for col := -1; col <= chess.BoardSize; col++ {
					to := chess.Sq(row, col)
					trial := board.Copy()
					before := testutil.Cells(trial)
					fromBefore, toBefore := trial.At(from), trial.At(to)

					_, err := Move(trial, id, to)
					if err != nil {
						testutil.AssertEqual(t, testutil.Cells(trial), before, "%v -> %v rejected", from, to)
						if trial.At(from) != fromBefore || trial.At(to) != toBefore {
							t.Errorf("%v -> %v rejected but endpoints changed", from, to)
						}
						continue
					}

					if got := trial.At(from); got != chess.NoPiece {
						t.Errorf("%v -> %v: source holds %v, want NoPiece", from, to, got)
					}
					if got, _ := trial.Find(id); got != to {
						t.Errorf("%v -> %v: Find() = %v", from, to, got)
					}
				}
			}
		}
	}
}

func TestMove_OpeningMoves(t *testing.T) {
	board := chess.NewInitialBoard()

	moves := []struct {
		from, to chess.Square
		wantErr  error
	}{
		{chess.Sq(6, 4), chess.Sq(4, 4), nil},                            // e2-e4
		{chess.Sq(1, 4), chess.Sq(3, 4), nil},                            // e7-e5
		{chess.Sq(7, 6), chess.Sq(5, 5), nil},                            // Ng1-f3
		{chess.Sq(0, 1), chess.Sq(2, 2), nil},                            // Nb8-c6
		{chess.Sq(7, 5), chess.Sq(3, 1), nil},                            // Bf1-b5
		{chess.Sq(0, 0), chess.Sq(2, 0), chesserrors.ErrInvalidMovement}, // rook through pawn
		{chess.Sq(7, 4), chess.Sq(7, 5), nil},                            // Ke1-f1
		{chess.Sq(0, 3), chess.Sq(0, 4), chesserrors.ErrInvalidMovement}, // queen onto king
		{chess.Sq(5, 5), chess.Sq(3, 4), nil},                            // Nxe5
	}

	for _, m := range moves {
		id := testutil.MustPiece(t, board, m.from)
		_, err := Move(board, id, m.to)
		if m.wantErr == nil {
			testutil.AssertNoError(t, err, "%v -> %v", m.from, m.to)
		} else {
			testutil.AssertErrorIs(t, err, m.wantErr, "%v -> %v", m.from, m.to)
		}
	}

	testutil.AssertEqual(t, testutil.Cells(board), []string{
		"r.bqkbnr",
		"pppp.ppp",
		"..n.....",
		".B..N...",
		"....P...",
		"........",
		"PPPP.PPP",
		"RNBQ.K.R",
	})
	white, black := board.Count()
	testutil.AssertEqual(t, []int{white, black}, []int{16, 15})
}
