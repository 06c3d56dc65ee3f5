// Package game runs a two-player game on top of the rules engine: turn
// order, draw offers, resignation and the end-of-game verdict.
//
// The engine validates single moves and knows nothing about whose turn it
// is; everything here is game flow layered on engine.Move.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Result is the state of a game.
type Result int

const (
	Ongoing Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the result as shown to players.
func (r Result) String() string {
	switch r {
	case Ongoing:
		return "Ongoing"
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "Draw"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Over reports whether the game has ended.
func (r Result) Over() bool {
	return r != Ongoing
}

// winFor returns the result in which colour wins.
func winFor(colour chess.Colour) Result {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Game is one game in progress. It is not safe for concurrent use.
type Game struct {
	board     *chess.Board
	turn      chess.Colour
	result    Result
	drawOffer bool
	plies     int
}

// New starts a game from the standard initial position, White to move.
func New() *Game {
	return NewFromBoard(chess.NewInitialBoard(), chess.White)
}

// NewFromBoard starts a game from an arbitrary position. The result is
// evaluated immediately, so a position with nothing left to play is
// already over.
func NewFromBoard(board *chess.Board, turn chess.Colour) *Game {
	g := &Game{board: board, turn: turn}
	g.result = evaluate(board)
	return g
}

// Board returns the game's board. Callers must not mutate it directly.
func (g *Game) Board() *chess.Board { return g.board }

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour { return g.turn }

// Result returns the current result.
func (g *Game) Result() Result { return g.result }

// Plies returns the number of moves played in this game.
func (g *Game) Plies() int { return g.plies }

// DrawOffered reports whether the side to move has a draw offer pending.
func (g *Game) DrawOffered() bool { return g.drawOffer }

// Move plays a move given in square notation, e.g. Move("E2", "E4").
func (g *Game) Move(from, to string) (Result, error) {
	src, dst, err := notation.ParseMove(from, to)
	if err != nil {
		return g.result, err
	}
	if _, err := g.MoveSquares(src, dst); err != nil {
		return g.result, err
	}
	return g.result, nil
}

// MoveSquares plays the piece on from to to. The piece must belong to the
// side to move. On success the turn passes and the result is re-evaluated;
// on error nothing changes.
func (g *Game) MoveSquares(from, to chess.Square) (engine.Capture, error) {
	if g.result.Over() {
		return engine.Capture{}, errors.ErrGameOver
	}

	id := g.board.At(from)
	piece, ok := g.board.Piece(id)
	if !ok {
		return engine.Capture{}, fmt.Errorf("%s: %w", notation.FormatSquare(from), errors.ErrEmptySquare)
	}
	if piece.Colour != g.turn {
		return engine.Capture{}, fmt.Errorf("%s on %s, %s to move: %w",
			piece, notation.FormatSquare(from), g.turn, errors.ErrWrongTurn)
	}

	capture, err := engine.Move(g.board, id, to)
	if err != nil {
		return engine.Capture{}, err
	}

	g.plies++
	g.drawOffer = false
	g.turn = g.turn.Opposite()
	g.result = evaluate(g.board)
	return capture, nil
}

// Resign ends the game in favour of the side not to move.
func (g *Game) Resign() (Result, error) {
	if g.result.Over() {
		return g.result, errors.ErrGameOver
	}
	g.result = winFor(g.turn.Opposite())
	g.drawOffer = false
	return g.result, nil
}

// OfferDraw records a draw offer from the side to move. The opponent
// answers with RespondDraw before play continues.
func (g *Game) OfferDraw() error {
	if g.result.Over() {
		return errors.ErrGameOver
	}
	g.drawOffer = true
	return nil
}

// RespondDraw answers a pending draw offer. Accepting ends the game;
// declining clears the offer and the offering side is still to move.
func (g *Game) RespondDraw(accept bool) (Result, error) {
	if g.result.Over() {
		return g.result, errors.ErrGameOver
	}
	if !g.drawOffer {
		return g.result, errors.ErrNoDrawOffer
	}
	g.drawOffer = false
	if accept {
		g.result = Draw
	}
	return g.result, nil
}

// evaluate decides the result from material alone. Kings cannot be
// captured, so a side reduced to its king (or to nothing) has lost.
func evaluate(board *chess.Board) Result {
	whiteOut := outOfMaterial(board, chess.White)
	blackOut := outOfMaterial(board, chess.Black)
	switch {
	case whiteOut && blackOut:
		return Draw
	case whiteOut:
		return BlackWins
	case blackOut:
		return WhiteWins
	}
	return Ongoing
}

func outOfMaterial(board *chess.Board, colour chess.Colour) bool {
	return len(board.PiecesOf(colour)) == 0 || engine.IsBareKing(board, colour)
}
