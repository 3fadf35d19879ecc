package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
)

// ParseBoard builds a board from eight rows of piece letters, rank 8 first.
// Uppercase letters are White, lowercase Black, and '.' an empty square.
// The returned board has no castling rights and no en passant square.
func ParseBoard(toMove chess.Colour, rows ...string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}
	board := chess.NewEmptyBoard()
	board.ToMove = toMove
	for i, row := range rows {
		if len(row) != chess.BoardSize {
			return nil, fmt.Errorf("diagram row %d is %q, want %d squares", i+1, row, chess.BoardSize)
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			if row[file] == '.' {
				continue
			}
			piece, ok := chess.PieceFromLetter(row[file])
			if !ok {
				return nil, fmt.Errorf("diagram row %d: unknown piece %q", i+1, row[file])
			}
			board.Set(chess.Sq(file, rank), piece)
		}
	}
	return board, nil
}

// MustBoard builds a board from a diagram and calls t.Fatal if it is malformed.
func MustBoard(t *testing.T, toMove chess.Colour, rows ...string) *chess.Board {
	t.Helper()
	board, err := ParseBoard(toMove, rows...)
	if err != nil {
		t.Fatalf("bad test diagram: %v", err)
	}
	return board
}

// FindMove returns the first move in moves from one square to another,
// optionally matching a promotion kind (chess.NoKind matches any).
func FindMove(moves []chess.Move, from, to chess.Square, promotion chess.Kind) (chess.Move, bool) {
	for _, m := range moves {
		if m.From != from || m.To != to {
			continue
		}
		if promotion != chess.NoKind && m.Promotion.Kind != promotion {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}

// MustFindMove is FindMove that calls t.Fatal when no move matches.
func MustFindMove(t *testing.T, moves []chess.Move, from, to chess.Square, promotion chess.Kind) chess.Move {
	t.Helper()
	m, ok := FindMove(moves, from, to, promotion)
	if !ok {
		t.Fatalf("no move %v%v (promotion %v) among %d moves", from, to, promotion, len(moves))
	}
	return m
}
