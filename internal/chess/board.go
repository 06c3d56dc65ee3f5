package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board is an 8x8 grid of piece references plus the arena that owns the
// pieces. The grid is the only record of where a piece is: a piece has no
// stored position, and Find/Locate derive it from the cells.
type Board struct {
	// cells[row][col] holds the occupying piece or NoPiece.
	cells [BoardSize][BoardSize]PieceID

	// pieces is the arena; PieceID n refers to pieces[n-1]. Entries are
	// never removed, so IDs stay stable after a capture.
	pieces []Piece
}

// backRank is the order of pieces on both back ranks, column 0 to 7.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position. Previously allocated pieces stay in the arena, off the
// board.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Place(BlackBackRow, col, backRank[col], Black)
		b.Place(BlackPawnRow, col, Pawn, Black)
		b.Place(WhitePawnRow, col, Pawn, White)
		b.Place(WhiteBackRow, col, backRank[col], White)
	}
}

// Clear removes every piece from the grid.
func (b *Board) Clear() {
	b.cells = [BoardSize][BoardSize]PieceID{}
}

// Add allocates a new piece in the arena without placing it.
func (b *Board) Add(kind Kind, colour Colour) PieceID {
	b.pieces = append(b.pieces, Piece{Kind: kind, Colour: colour})
	return PieceID(len(b.pieces))
}

// Place allocates a new piece and puts it on (row, col), replacing any
// occupant. It returns the new piece's ID, which is valid even when the
// coordinates are off the board (the piece then simply isn't placed).
func (b *Board) Place(row, col int, kind Kind, colour Colour) PieceID {
	id := b.Add(kind, colour)
	b.Set(row, col, id)
	return id
}

// Piece returns the identity of a piece. ok is false for IDs the arena
// never issued.
func (b *Board) Piece(id PieceID) (p Piece, ok bool) {
	if id <= NoPiece || int(id) > len(b.pieces) {
		return Piece{}, false
	}
	return b.pieces[id-1], true
}

// Get returns the piece at (row, col), or NoPiece when the square is empty
// or off the board.
func (b *Board) Get(row, col int) PieceID {
	if !InBounds(row, col) {
		return NoPiece
	}
	return b.cells[row][col]
}

// At is Get for a Square.
func (b *Board) At(sq Square) PieceID {
	return b.Get(sq.Row, sq.Col)
}

// Occupant returns the identity of the piece on sq, if any.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	id := b.At(sq)
	if id == NoPiece {
		return Piece{}, false
	}
	return b.Piece(id)
}

// Set puts id on (row, col) with no legality checks. A piece already on
// the board elsewhere is moved, so it never occupies two cells; a piece
// overwritten at the target goes off the board. Setting NoPiece empties the
// cell. Off-board coordinates and unknown IDs are ignored.
func (b *Board) Set(row, col int, id PieceID) {
	if !InBounds(row, col) {
		return
	}
	if id != NoPiece {
		if _, ok := b.Piece(id); !ok {
			return
		}
		if from, ok := b.Find(id); ok {
			b.cells[from.Row][from.Col] = NoPiece
		}
	}
	b.cells[row][col] = id
}

// Remove empties (row, col) and returns whatever was there.
func (b *Board) Remove(row, col int) PieceID {
	id := b.Get(row, col)
	if id != NoPiece {
		b.cells[row][col] = NoPiece
	}
	return id
}

// Find scans the grid for id.
func (b *Board) Find(id PieceID) (Square, bool) {
	if id == NoPiece {
		return Square{}, false
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col] == id {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Locate reports whether id is on the board or has left it. It returns nil
// for IDs the arena never issued.
func (b *Board) Locate(id PieceID) Location {
	if _, ok := b.Piece(id); !ok {
		return nil
	}
	if sq, ok := b.Find(id); ok {
		return OnBoard{Square: sq}
	}
	return Captured{}
}

// Count returns the number of white and black pieces on the board.
func (b *Board) Count() (white, black int) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p, ok := b.Piece(b.cells[row][col])
			if !ok {
				continue
			}
			if p.Colour == White {
				white++
			} else {
				black++
			}
		}
	}
	return white, black
}

// PiecesOf returns the IDs of all pieces of one colour on the board, in
// row-major order.
func (b *Board) PiecesOf(colour Colour) []PieceID {
	var ids []PieceID
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			id := b.cells[row][col]
			if p, ok := b.Piece(id); ok && p.Colour == colour {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// ColourAt returns the colour of the piece on (row, col).
func (b *Board) ColourAt(row, col int) (Colour, error) {
	p, ok := b.Occupant(Square{Row: row, Col: col})
	if !ok {
		return Black, fmt.Errorf("no piece at %v: %w", Square{Row: row, Col: col}, errors.ErrEmptySquare)
	}
	return p.Colour, nil
}

// Copy creates a deep copy of the board. Piece IDs mean the same pieces in
// both boards.
func (b *Board) Copy() *Board {
	newBoard := &Board{cells: b.cells}
	newBoard.pieces = append([]Piece(nil), b.pieces...)
	return newBoard
}

// BoardState captures the grid for save/restore. The engine has no undo,
// so callers that want one snapshot before moving.
type BoardState struct {
	Cells [BoardSize][BoardSize]PieceID
}

// SaveState captures the current grid for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{Cells: b.cells}
}

// RestoreState restores the grid to a previously saved state. The arena
// is never shrunk: pieces added after the save keep their IDs and are
// simply off the board, so an ID is never issued twice.
func (b *Board) RestoreState(s BoardState) {
	b.cells = s.Cells
}

// InBounds reports whether both coordinates are in [0, BoardSize).
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
