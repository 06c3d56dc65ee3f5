// Package hashing provides position hashing and duplicate detection.
package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by position hash
	hashTable map[uint64][]Signature
	// useExactMatch also requires the side to move to match
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	size        int
}

// Signature identifies a position.
type Signature struct {
	// Hash is the Zobrist hash of the placement
	Hash uint64
	// Turn is the side to move
	Turn chess.Colour
	// WeakHash is a second checksum for collision safety
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector. With exactMatch
// the same placement with a different side to move is a new position.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// SignatureOf computes the signature of a position.
func SignatureOf(board *chess.Board, turn chess.Colour) Signature {
	return Signature{
		Hash:     GenerateZobristHash(board),
		Turn:     turn,
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, turn chess.Colour) bool {
	if board == nil {
		return false
	}

	sig := SignatureOf(board, turn)

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two signatures describe the same position.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Turn != b.Turn {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.size = 0
}
