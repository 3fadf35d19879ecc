// Package engine provides pseudo-legal move generation and reversible move
// application for chess boards.
//
// Moves are pseudo-legal: they are geometrically valid and never land on a
// friendly piece, but nothing checks whether they leave the mover's own king
// capturable. A game is won by capturing the king.
package engine

import "github.com/lgbarn/chess-strategies-go/internal/chess"

// MovesFor returns the pseudo-legal moves for the piece on from.
// An empty square, or a piece that does not belong to the side to move,
// yields no moves.
func MovesFor(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return nil
	}

	var targets []chess.Square
	switch piece.Kind {
	case chess.Pawn:
		targets = pawnTargets(board, from, piece.Colour)
	case chess.Rook:
		targets = slide(board, from, piece.Colour, rookDirections)
	case chess.Bishop:
		targets = slide(board, from, piece.Colour, bishopDirections)
	case chess.Queen:
		targets = slide(board, from, piece.Colour, queenDirections)
	case chess.Knight:
		targets = jump(from, knightOffsets)
	case chess.King:
		targets = jump(from, kingOffsets)
	}

	moves := make([]chess.Move, 0, len(targets))
	for _, to := range targets {
		occupant := board.At(to)
		if !occupant.IsEmpty() && occupant.Colour == piece.Colour {
			continue
		}
		move := chess.Move{
			Player: piece.Colour,
			From:   from,
			To:     to,
			Piece:  piece,
		}
		if !occupant.IsEmpty() {
			move.Captured = occupant
			move.CaptureSquare = to
		}
		moves = append(moves, move)
	}

	switch piece.Kind {
	case chess.Pawn:
		if promotesFrom(from, piece.Colour) {
			moves = expandPromotions(moves)
		}
		if move, ok := enPassantMove(board, from, piece); ok {
			moves = append(moves, move)
		}
	case chess.King:
		moves = append(moves, castleMoves(board, from, piece)...)
	}
	return moves
}

// AllMoves returns the pseudo-legal moves of the side to move, scanning
// files a-h and, within each file, ranks 1-8. Strategies rely on this
// order to break ties.
func AllMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			moves = append(moves, MovesFor(board, chess.Sq(file, rank))...)
		}
	}
	return moves
}

// CountMoves returns the number of pseudo-legal moves of the side to move.
func CountMoves(board *chess.Board) int {
	count := 0
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			count += len(MovesFor(board, chess.Sq(file, rank)))
		}
	}
	return count
}
