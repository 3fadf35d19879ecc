package hashing

import (
	"testing"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
	"github.com/lgbarn/chess-strategies-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(chess.NewBoard())
	hash2 := GenerateZobristHash(chess.NewBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
	if keys := newZobristKeys(zobristSeed); *keys != *zobrist {
		t.Error("key table is not reproducible from its seed")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	initial := chess.NewBoard()
	base := GenerateZobristHash(initial)

	tests := []struct {
		name   string
		modify func(b *chess.Board)
	}{
		{"pawn moved", func(b *chess.Board) {
			b.Set(chess.Sq(4, 1), chess.NoPiece)
			b.Set(chess.Sq(4, 3), chess.W(chess.Pawn))
		}},
		{"side to move", func(b *chess.Board) { b.ToMove = chess.Black }},
		{"castling right lost", func(b *chess.Board) { b.Castling[chess.White].Queenside = false }},
		{"en passant file", func(b *chess.Board) {
			b.EnPassant = true
			b.EPFile = 3
		}},
		{"piece colour", func(b *chess.Board) { b.Set(chess.Sq(0, 0), chess.B(chess.Rook)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := initial.Clone()
			tt.modify(board)
			if GenerateZobristHash(board) == base {
				t.Error("Different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashIgnoresClock(t *testing.T) {
	board := chess.NewBoard()
	before := GenerateZobristHash(board)
	board.HalfmoveClock = 17
	testutil.AssertEqual(t, GenerateZobristHash(board), before)
}

func TestZobristHashAfterRevert(t *testing.T) {
	board := chess.NewBoard()
	before := GenerateZobristHash(board)

	for _, m := range engine.AllMoves(board) {
		engine.ConsiderMove(board, m, func(b *chess.Board) struct{} {
			if GenerateZobristHash(b) == before {
				t.Errorf("%s left the hash unchanged", m)
			}
			return struct{}{}
		})
	}
	testutil.AssertEqual(t, GenerateZobristHash(board), before, "hash restored")
}

func TestWeakHashConsistency(t *testing.T) {
	hash1 := WeakHash(chess.NewBoard())
	hash2 := WeakHash(chess.NewBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
	if WeakHash(chess.NewEmptyBoard()) != 0 {
		t.Error("empty board should have a zero weak hash")
	}
}

func playMoves(t *testing.T, texts ...string) (*chess.Board, []chess.Move) {
	t.Helper()
	board := chess.NewBoard()
	var played []chess.Move
	for _, text := range texts {
		var found bool
		for _, m := range engine.AllMoves(board) {
			if m.String() == text {
				engine.ApplyMove(board, m)
				played = append(played, m)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s not available", text)
		}
	}
	return board, played
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector()

	board, moves := playMoves(t, "g1f3", "g8f6")
	if _, dup := detector.CheckAndAdd(NewSignature("first", board, moves)); dup {
		t.Error("First game was marked as duplicate")
	}

	board, moves = playMoves(t, "g1f3", "g8f6")
	original, dup := detector.CheckAndAdd(NewSignature("second", board, moves))
	if !dup {
		t.Error("Duplicate game was not detected")
	}
	testutil.AssertEqual(t, original, "first")

	// Same final position by a different route is not a repeat.
	board, moves = playMoves(t, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6")
	if _, dup := detector.CheckAndAdd(NewSignature("third", board, moves)); dup {
		t.Error("transposition marked as duplicate")
	}

	testutil.AssertEqual(t, detector.DuplicateCount(), 1)
	testutil.AssertEqual(t, detector.UniqueCount(), 2)

	detector.Reset()
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), 0)
}

func TestHashMoveSequence(t *testing.T) {
	_, ab := playMoves(t, "g1f3", "b8c6")
	_, ba := playMoves(t, "b1c3", "g8f6")

	if HashMoveSequence(ab) == HashMoveSequence(ba) {
		t.Error("different sequences produced the same hash")
	}
	testutil.AssertEqual(t, HashMoveSequence(nil), uint64(0))
}
