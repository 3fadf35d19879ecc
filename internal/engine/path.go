package engine

import "github.com/lgbarn/chess-strategies-go/internal/chess"

// Direction sets, in generation order.
var (
	rookDirections = []chess.Square{
		{File: 1, Rank: 0}, {File: 0, Rank: 1}, {File: -1, Rank: 0}, {File: 0, Rank: -1},
	}
	bishopDirections = []chess.Square{
		{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: -1}, {File: -1, Rank: 1},
	}
	queenDirections = append(append([]chess.Square{}, rookDirections...), bishopDirections...)
	kingOffsets     = queenDirections
	knightOffsets   = []chess.Square{
		{File: -2, Rank: -1}, {File: -1, Rank: -2}, {File: -2, Rank: 1}, {File: 1, Rank: -2},
		{File: 2, Rank: -1}, {File: -1, Rank: 2}, {File: 2, Rank: 1}, {File: 1, Rank: 2},
	}
)

// maxRayLength is the longest slide possible on an 8x8 board.
const maxRayLength = chess.BoardSize - 1

// slide casts rays from a square. Each ray ends before a friendly piece
// and on an enemy piece.
func slide(board *chess.Board, from chess.Square, colour chess.Colour, directions []chess.Square) []chess.Square {
	var targets []chess.Square
	for _, dir := range directions {
		for step := 1; step <= maxRayLength; step++ {
			target := from.Add(dir.Mul(step))
			if !target.Valid() {
				break
			}
			occupant := board.At(target)
			if !occupant.IsEmpty() && occupant.Colour == colour {
				break
			}
			targets = append(targets, target)
			if !occupant.IsEmpty() {
				break
			}
		}
	}
	return targets
}

// jump returns every on-board square at the given offsets. Nothing blocks a jump.
func jump(from chess.Square, offsets []chess.Square) []chess.Square {
	targets := make([]chess.Square, 0, len(offsets))
	for _, offset := range offsets {
		if target := from.Add(offset); target.Valid() {
			targets = append(targets, target)
		}
	}
	return targets
}
