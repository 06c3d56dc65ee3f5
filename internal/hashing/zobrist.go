package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs and can
// be stored.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// pieceKeys[colour][kind][row*8+col]
	pieceKeys [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	// whiteToMoveKey is mixed in when White is to move.
	whiteToMoveKey uint64
)

func init() {
	r := &xorshift{s: zobristSeed}
	for colour := range pieceKeys {
		for kind := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][kind] {
				pieceKeys[colour][kind][sq] = r.next()
			}
		}
	}
	whiteToMoveKey = r.next()
}

type xorshift struct {
	s uint64
}

func (r *xorshift) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// GenerateZobristHash hashes the piece placement of board. Piece identity
// does not matter, only kind and colour per square.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := board.Occupant(chess.Sq(row, col))
			if !ok {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}
	return hash
}

// PositionHash hashes the placement together with the side to move.
func PositionHash(board *chess.Board, turn chess.Colour) uint64 {
	hash := GenerateZobristHash(board)
	if turn == chess.White {
		hash ^= whiteToMoveKey
	}
	return hash
}

// WeakHash is a cheap order-dependent checksum of the grid, used as a
// second opinion when two Zobrist hashes collide.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			var c uint32 = '.'
			if p, ok := board.Occupant(chess.Sq(row, col)); ok {
				c = uint32(p.Letter())
			}
			hash = hash*31 + c
		}
	}
	return hash
}
