// Package hashing provides position hashing and duplicate detection for
// tournament games.
package hashing

import (
	"github.com/lgbarn/chess-strategies-go/internal/chess"
)

// DuplicateDetector remembers played games and reports repeats. Two games
// repeat each other when they reach the same final position by the same
// sequence of moves.
type DuplicateDetector struct {
	// hashTable maps final position hashes to the games that reached them
	hashTable map[uint64][]GameSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// ID of the first game seen with this signature
	ID string
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// MoveCount is the number of half-moves in the game
	MoveCount int
	// Sequence hashes the move texts in order
	Sequence uint64
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]GameSignature),
	}
}

// NewSignature builds the signature of a game from its final position and
// its moves.
func NewSignature(id string, final *chess.Board, moves []chess.Move) GameSignature {
	return GameSignature{
		ID:        id,
		Hash:      GenerateZobristHash(final),
		WeakHash:  WeakHash(final),
		MoveCount: len(moves),
		Sequence:  HashMoveSequence(moves),
	}
}

// CheckAndAdd checks if a game repeats an earlier one and otherwise adds it.
// For a repeat it returns the ID of the earlier game and true.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (string, bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.ID, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return "", false
}

func signaturesMatch(a, b GameSignature) bool {
	return a.Hash == b.Hash &&
		a.WeakHash == b.WeakHash &&
		a.MoveCount == b.MoveCount &&
		a.Sequence == b.Sequence
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}

// HashMoveSequence creates a hash from the move texts.
func HashMoveSequence(moves []chess.Move) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range moves {
		for _, c := range m.String() {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}
	return hash
}
