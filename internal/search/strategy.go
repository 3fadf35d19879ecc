// Package search implements the move-choosing strategies that play games:
// a seeded random mover and a family of fixed-depth tree searches that differ
// in what they assume about the opponent.
//
// Every search clones the caller's board and explores the clone in place with
// engine.ConsiderMove, so the caller's board is never modified.
package search

import (
	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
)

// Strategy chooses a move for the side to move.
type Strategy interface {
	// Name identifies the strategy and its parameters, e.g. "minimax:2".
	Name() string
	// ChooseMove returns one of the pseudo-legal moves of the side to move,
	// or ErrNoMoves if there are none.
	ChooseMove(board *chess.Board) (chess.Move, error)
}

// Result is the move a search picked and the score it backed up for it.
type Result struct {
	Move  chess.Move
	Score float64
}

// Searcher is a Strategy that can also report the score behind its choice.
type Searcher interface {
	Strategy
	Search(board *chess.Board) (Result, error)
}

// flip is +1 for White and -1 for Black.
func flip(c chess.Colour) Evaluation {
	if c == chess.White {
		return 1
	}
	return -1
}

// pick scores every move of the side to move and keeps the first one for
// which better(score, best) holds against the current best. It reports false
// when the side to move has no moves.
func pick[S Evaluation | float64](board *chess.Board, score func(*chess.Board) S, better func(candidate, best S) bool) (chess.Move, S, bool) {
	var (
		bestMove  chess.Move
		bestScore S
		found     bool
	)
	for _, move := range engine.AllMoves(board) {
		s := engine.ConsiderMove(board, move, score)
		if !found || better(s, bestScore) {
			bestMove, bestScore, found = move, s, true
		}
	}
	return bestMove, bestScore, found
}

func greater[S Evaluation | float64](candidate, best S) bool { return candidate > best }

func less[S Evaluation | float64](candidate, best S) bool { return candidate < best }

// isLeaf reports whether the search stops at board.
func isLeaf(depth int, board *chess.Board) bool {
	return depth <= 0 || !engine.IsPlaying(board)
}
