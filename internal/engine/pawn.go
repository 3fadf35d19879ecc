package engine

import "github.com/lgbarn/chess-strategies-go/internal/chess"

// pawnTargets returns the pushes and diagonal captures available to a pawn.
func pawnTargets(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	forward := colour.ForwardVector()

	single := from.Add(forward)
	if single.Valid() && board.IsEmpty(single) {
		targets = append(targets, single)

		double := from.Add(forward.Mul(2))
		if from.Rank == colour.PawnRank() && double.Valid() && board.IsEmpty(double) {
			targets = append(targets, double)
		}
	}

	for _, df := range []int{-1, 1} {
		target := from.Add(chess.Square{File: df, Rank: colour.Forward()})
		if !target.Valid() {
			continue
		}
		if occupant := board.At(target); !occupant.IsEmpty() && occupant.Colour != colour {
			targets = append(targets, target)
		}
	}
	return targets
}

// promotesFrom returns true if a pawn on this square reaches the far rank with its next move.
func promotesFrom(from chess.Square, colour chess.Colour) bool {
	return from.Rank == colour.PawnRank()+5*colour.Forward()
}

// expandPromotions replaces each pawn move with one move per promotion kind,
// grouped by kind.
func expandPromotions(moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves)*len(chess.PromotionKinds))
	for _, kind := range chess.PromotionKinds {
		for _, m := range moves {
			m.Promotion = chess.Piece{Kind: kind, Colour: m.Player}
			expanded = append(expanded, m)
		}
	}
	return expanded
}

// enPassantRank returns the rank a pawn must stand on to capture en passant.
func enPassantRank(colour chess.Colour) int {
	return colour.PawnRank() + 3*colour.Forward()
}

// enPassantMove returns the en passant capture available to the pawn, if any.
func enPassantMove(board *chess.Board, from chess.Square, pawn chess.Piece) (chess.Move, bool) {
	if !board.EnPassant || from.Rank != enPassantRank(pawn.Colour) {
		return chess.Move{}, false
	}
	if abs(board.EPFile-from.File) != 1 {
		return chess.Move{}, false
	}

	victimSquare := chess.Sq(board.EPFile, from.Rank)
	victim := board.At(victimSquare)
	if !victim.Is(chess.Pawn, pawn.Colour.Opposite()) {
		return chess.Move{}, false
	}

	return chess.Move{
		Player:        pawn.Colour,
		From:          from,
		To:            chess.Sq(board.EPFile, from.Rank+pawn.Colour.Forward()),
		Piece:         pawn,
		Captured:      victim,
		CaptureSquare: victimSquare,
	}, true
}

// isDoublePush returns true if the move advanced a pawn two ranks.
func isDoublePush(move chess.Move) bool {
	return move.Piece.Kind == chess.Pawn && abs(move.To.Rank-move.From.Rank) == 2
}
