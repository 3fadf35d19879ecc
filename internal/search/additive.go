package search

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// Additive scores a move by adding up the evaluations of every position in
// the tree below it. The opponent's replies are averaged, the mover's own
// replies summed, so lines with many good continuations weigh more.
type Additive struct {
	Depth int
}

// Name implements Strategy.
func (a *Additive) Name() string { return fmt.Sprintf("additive:%d", a.Depth) }

// ChooseMove implements Strategy.
func (a *Additive) ChooseMove(board *chess.Board) (chess.Move, error) {
	r, err := a.Search(board)
	return r.Move, err
}

// Search returns the chosen move and its accumulated score, which is from
// White's point of view.
func (a *Additive) Search(board *chess.Board) (Result, error) {
	work := board.Clone()
	mover := float64(flip(work.ToMove))
	move, score, ok := pick(work,
		func(b *chess.Board) float64 { return additiveValue(a.Depth, b, true) },
		func(candidate, best float64) bool { return candidate*mover > best*mover })
	if !ok {
		return Result{}, errors.ErrNoMoves
	}
	log.Debug().Str("strategy", a.Name()).Str("move", move.String()).Float64("score", score).Msg("additive-best")
	return Result{Move: move, Score: score}, nil
}

// additiveValue accumulates the tree below board. opponent is true when the
// side to move on board is the opponent of the root mover.
func additiveValue(depth int, board *chess.Board, opponent bool) float64 {
	if depth <= 0 {
		return float64(Evaluate(board))
	}
	moves := engine.AllMoves(board)
	if !engine.IsPlaying(board) {
		// A finished game stands in for the whole subtree it cut off.
		return float64(Evaluate(board)) * math.Pow(float64(len(moves)), float64(depth))
	}
	if len(moves) == 0 {
		return float64(Evaluate(board))
	}

	var total float64
	for _, move := range moves {
		total += engine.ConsiderMove(board, move, func(b *chess.Board) float64 {
			return additiveValue(depth-1, b, !opponent)
		})
	}
	if opponent {
		total /= float64(len(moves))
	}
	return total
}
