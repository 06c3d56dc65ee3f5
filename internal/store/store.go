// Package store saves and restores named positions in a SQLite database.
package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

const schema = `
	CREATE TABLE IF NOT EXISTS positions (
		name      TEXT PRIMARY KEY,
		placement TEXT NOT NULL,
		turn      TEXT NOT NULL,
		hash      INTEGER NOT NULL,
		saved_at  INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_positions_hash
	ON positions(hash);
`

// Entry describes one saved position.
type Entry struct {
	Name      string
	Placement string
	Turn      chess.Colour
	Hash      uint64
	SavedAt   time.Time
}

// Store is a position database. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// SQLite allows a single writer; one connection also keeps an
	// in-memory database alive for the life of the Store.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `
		PRAGMA journal_mode=WAL;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores board under name, replacing any position already saved
// under that name.
func (s *Store) Save(ctx context.Context, name string, board *chess.Board, turn chess.Colour) error {
	if name == "" {
		return fmt.Errorf("save: empty name")
	}
	hash := hashing.PositionHash(board, turn)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO positions (name, placement, turn, hash, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			placement = excluded.placement,
			turn      = excluded.turn,
			hash      = excluded.hash,
			saved_at  = excluded.saved_at
	`, name, engine.Placement(board), turn.String(), int64(hash), s.now().Unix())
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// Load restores the position saved under name.
func (s *Store) Load(ctx context.Context, name string) (*chess.Board, chess.Colour, error) {
	var placement, turn string
	err := s.db.QueryRowContext(ctx,
		"SELECT placement, turn FROM positions WHERE name = ?", name).Scan(&placement, &turn)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, chess.White, errors.Wrapf(errors.ErrPositionNotFound, "load %q", name)
	}
	if err != nil {
		return nil, chess.White, fmt.Errorf("load %q: %w", name, err)
	}

	board, err := engine.NewBoardFromPlacement(placement)
	if err != nil {
		return nil, chess.White, fmt.Errorf("load %q: %w", name, err)
	}
	colour, err := parseTurn(turn)
	if err != nil {
		return nil, chess.White, fmt.Errorf("load %q: %w", name, err)
	}
	return board, colour, nil
}

// List returns every saved position, most recent first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, placement, turn, hash, saved_at
		FROM positions
		ORDER BY saved_at DESC, name
	`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindByPosition returns the names of saved positions equal to board with
// turn to move.
func (s *Store) FindByPosition(ctx context.Context, board *chess.Board, turn chess.Colour) ([]string, error) {
	hash := hashing.PositionHash(board, turn)
	placement := engine.Placement(board)

	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM positions WHERE hash = ? AND placement = ? ORDER BY name",
		int64(hash), placement)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("find: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the position saved under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM positions WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return errors.Wrapf(errors.ErrPositionNotFound, "delete %q", name)
	}
	return nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e       Entry
		turn    string
		hash    int64
		savedAt int64
	)
	if err := rows.Scan(&e.Name, &e.Placement, &turn, &hash, &savedAt); err != nil {
		return Entry{}, fmt.Errorf("list: %w", err)
	}
	colour, err := parseTurn(turn)
	if err != nil {
		return Entry{}, fmt.Errorf("list %q: %w", e.Name, err)
	}
	e.Turn = colour
	e.Hash = uint64(hash)
	e.SavedAt = time.Unix(savedAt, 0)
	return e, nil
}

func parseTurn(s string) (chess.Colour, error) {
	switch s {
	case chess.White.String():
		return chess.White, nil
	case chess.Black.String():
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown side to move %q", s)
}
