package engine

import "github.com/lgbarn/chess-strategies-go/internal/chess"

// DrawClockLimit is the number of half-moves without a capture, pawn move
// or castle after which the game is drawn.
const DrawClockLimit = 50

// GameState returns the outcome of the position. The game is drawn once
// the half-move clock reaches DrawClockLimit, and won by the side whose
// opponent no longer has a king.
func GameState(board *chess.Board) chess.WinState {
	if board.HalfmoveClock >= DrawClockLimit {
		return chess.Draw
	}
	if !board.HasKing(board.ToMove) {
		return chess.WinnerState(board.ToMove.Opposite())
	}
	if !board.HasKing(board.ToMove.Opposite()) {
		return chess.WinnerState(board.ToMove)
	}
	return chess.Playing
}

// IsPlaying returns true while the game has no result.
func IsPlaying(board *chess.Board) bool {
	return GameState(board) == chess.Playing
}
