package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/render"
	"github.com/lgbarn/chessrules-go/internal/setup"
	"github.com/lgbarn/chessrules-go/internal/store"
)

// positionStore is the part of store.Store a session uses.
type positionStore interface {
	Save(ctx context.Context, name string, board *chess.Board, turn chess.Colour) error
	Load(ctx context.Context, name string) (*chess.Board, chess.Colour, error)
	List(ctx context.Context) ([]store.Entry, error)
	Delete(ctx context.Context, name string) error
	FindByPosition(ctx context.Context, board *chess.Board, turn chess.Colour) ([]string, error)
}

// Session is one run of the interactive menus.
type Session struct {
	ctx      context.Context
	cfg      *config.Config
	in       *bufio.Scanner
	out      io.Writer
	renderer *render.Renderer
	store    positionStore
	game     *game.Game
}

// NewSession creates a session reading commands from in and writing to
// cfg.OutputFile.
func NewSession(ctx context.Context, cfg *config.Config, in io.Reader) *Session {
	return &Session{
		ctx:      ctx,
		cfg:      cfg,
		in:       bufio.NewScanner(in),
		out:      cfg.OutputFile,
		renderer: render.New(cfg.OutputFile, cfg.Display),
	}
}

// SetStore enables the save, load, list and delete commands.
func (s *Session) SetStore(st positionStore) {
	s.store = st
}

// Run shows the main menu until the player exits or input ends.
func (s *Session) Run() error {
	for {
		s.printf("Select an Option\n")
		s.printf("1) Start Game\n")
		s.printf("2) Exit\n\n")

		selection, ok := s.prompt("Type your selection here: ")
		if !ok {
			return s.in.Err()
		}

		switch selection {
		case "1":
			g, err := s.newGame()
			if err != nil {
				s.printf("\n%v\n\n", err)
				continue
			}
			s.game = g
			if !s.play() {
				return s.in.Err()
			}
		case "2":
			s.printf("\nGame Over\n")
			return nil
		default:
			s.printf("\nInvalid option\n\n")
		}
	}
}

// newGame builds the starting position from the configuration.
func (s *Session) newGame() (*game.Game, error) {
	if path := s.cfg.Game.Setup; path != "" {
		scenario, err := setup.Load(path)
		if err != nil {
			return nil, err
		}
		g, result := processing.ReplayScenario(scenario)
		if !result.Valid {
			return nil, fmt.Errorf("%s: %s", path, result.ErrorMsg)
		}
		s.cfg.Logf(2, "starting from scenario %q", scenario.Name)
		return g, nil
	}

	board, err := engine.NewBoardFromPlacement(s.cfg.Game.Placement)
	if err != nil {
		return nil, err
	}
	turn, err := s.cfg.Game.Turn()
	if err != nil {
		return nil, err
	}
	return game.NewFromBoard(board, turn), nil
}

// play runs the turn menu until the game ends. It returns false when
// input runs out.
func (s *Session) play() bool {
	for !s.game.Result().Over() {
		s.showTurn()
		selection, ok := s.prompt("\nType your selection here: ")
		if !ok {
			return false
		}

		fields := strings.Fields(selection)
		if len(fields) == 0 {
			s.printf("\n%s is an invalid option, try again\n\n", selection)
			continue
		}

		switch fields[0] {
		case "1":
			if !s.move() {
				return false
			}
		case "2":
			if !s.draw() {
				return false
			}
		case "3":
			s.resign()
		default:
			if !s.command(fields) {
				s.printf("\n%s is an invalid option, try again\n\n", selection)
			}
		}
	}

	s.printf("\n%s\n", s.game.Result())
	s.printf("\nGame Over\n\n")
	s.cfg.Logf(1, "game over after %d moves: %s", s.game.Plies(), s.game.Result())
	return true
}

func (s *Session) showTurn() {
	s.printf("\n")
	_ = s.renderer.Board(s.game.Board())
	s.printf("\nTurn: %s\n", s.game.Turn())
	s.printf("\nSelect an Option\n")
	s.printf("1. Move piece\n")
	s.printf("2. Draw\n")
	s.printf("3. Resign\n")
	if s.store != nil {
		s.printf("save NAME | load NAME | delete NAME | list\n")
	}
}

func (s *Session) move() bool {
	s.printf("\nEnter your move\n")
	from, ok := s.prompt("From: ")
	if !ok {
		return false
	}
	to, ok := s.prompt("To: ")
	if !ok {
		return false
	}

	mover := s.game.Turn()
	if _, err := s.game.Move(from, to); err != nil {
		s.printf("\n%v\n", err)
		s.cfg.Logf(2, "rejected %s %s-%s: %v", mover, from, to, err)
		return true
	}
	s.cfg.Logf(2, "%s played %s-%s", mover, strings.ToUpper(from), strings.ToUpper(to))
	return true
}

func (s *Session) draw() bool {
	player := s.game.Turn()
	opponent := player.Opposite()

	if err := s.game.OfferDraw(); err != nil {
		s.printf("\n%v\n", err)
		return true
	}
	s.printf("\n%s wants to draw the game\n", player)
	s.printf("\n%s, Do you want to accept the draw? [Y/N]\n", opponent)

	for {
		answer, ok := s.prompt("Type your answer here: ")
		if !ok {
			return false
		}
		switch strings.ToLower(answer) {
		case "y":
			_, _ = s.game.RespondDraw(true)
			s.printf("\nGame Drawn\n")
			return true
		case "n":
			_, _ = s.game.RespondDraw(false)
			s.printf("\n%s REJECTS THE DRAW\n", strings.ToUpper(opponent.String()))
			return true
		default:
			s.printf("\nInvalid input. Please enter y or n.\n")
		}
	}
}

func (s *Session) resign() {
	player := s.game.Turn()
	if _, err := s.game.Resign(); err != nil {
		s.printf("\n%v\n", err)
		return
	}
	s.printf("\n%s resigns the game\n", player)
	s.printf("\n%s WINS\n", strings.ToUpper(player.Opposite().String()))
}

// command runs a store command. It returns false if fields is not one.
func (s *Session) command(fields []string) bool {
	if s.store == nil {
		return false
	}

	name := strings.Join(fields[1:], " ")
	switch fields[0] {
	case "save":
		if name == "" {
			return false
		}
		if err := s.store.Save(s.ctx, name, s.game.Board(), s.game.Turn()); err != nil {
			s.printf("\n%v\n", err)
			return true
		}
		s.printf("\nSaved %q\n", name)
		if names, err := s.store.FindByPosition(s.ctx, s.game.Board(), s.game.Turn()); err == nil && len(names) > 1 {
			s.printf("Same position saved as: %s\n", strings.Join(names, ", "))
		}
	case "load":
		if name == "" {
			return false
		}
		board, turn, err := s.store.Load(s.ctx, name)
		if err != nil {
			s.printf("\n%v\n", err)
			return true
		}
		s.game = game.NewFromBoard(board, turn)
		s.printf("\nLoaded %q\n", name)
	case "delete":
		if name == "" {
			return false
		}
		if err := s.store.Delete(s.ctx, name); err != nil {
			s.printf("\n%v\n", err)
			return true
		}
		s.printf("\nDeleted %q\n", name)
	case "list":
		s.list()
	default:
		return false
	}
	return true
}

func (s *Session) list() {
	entries, err := s.store.List(s.ctx)
	if err != nil {
		s.printf("\n%v\n", err)
		return
	}
	if len(entries) == 0 {
		s.printf("\nNo saved positions\n")
		return
	}
	s.printf("\n")
	for _, e := range entries {
		s.printf("%-20s %s to move  %s\n", e.Name, e.Turn, e.SavedAt.Format("2006-01-02 15:04"))
	}
}

// prompt prints text and reads one trimmed line.
func (s *Session) prompt(text string) (string, bool) {
	s.printf("%s", text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
