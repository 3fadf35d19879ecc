package search

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// Maximax searches assuming the opponent cooperates: it picks the move with
// the best outcome for the mover anywhere in the tree. Scores are from the
// mover's point of view.
type Maximax struct {
	Depth int
}

// Minimin is the mirror of Maximax: it picks the move with the worst outcome
// for the mover. Its scores never exceed those of Maximax at the same depth.
type Minimin struct {
	Depth int
}

// Name implements Strategy.
func (m *Maximax) Name() string { return fmt.Sprintf("maximax:%d", m.Depth) }

// ChooseMove implements Strategy.
func (m *Maximax) ChooseMove(board *chess.Board) (chess.Move, error) {
	r, err := m.Search(board)
	return r.Move, err
}

// Search returns the chosen move and its score.
func (m *Maximax) Search(board *chess.Board) (Result, error) {
	move, score, ok := maximaxSearch(m.Depth, board.Clone())
	if !ok {
		return Result{}, errors.ErrNoMoves
	}
	log.Debug().Str("strategy", m.Name()).Str("move", move.String()).Int("score", int(score)).Msg("maximax-best")
	return Result{Move: move, Score: float64(score)}, nil
}

// Name implements Strategy.
func (m *Minimin) Name() string { return fmt.Sprintf("minimin:%d", m.Depth) }

// ChooseMove implements Strategy.
func (m *Minimin) ChooseMove(board *chess.Board) (chess.Move, error) {
	r, err := m.Search(board)
	return r.Move, err
}

// Search returns the chosen move and its score.
func (m *Minimin) Search(board *chess.Board) (Result, error) {
	move, score, ok := miniminSearch(m.Depth, board.Clone())
	if !ok {
		return Result{}, errors.ErrNoMoves
	}
	log.Debug().Str("strategy", m.Name()).Str("move", move.String()).Int("score", int(score)).Msg("minimin-best")
	return Result{Move: move, Score: float64(score)}, nil
}

func maximaxSearch(depth int, board *chess.Board) (chess.Move, Evaluation, bool) {
	return pick(board, func(b *chess.Board) Evaluation { return maximaxValue(depth, b) }, greater[Evaluation])
}

func miniminSearch(depth int, board *chess.Board) (chess.Move, Evaluation, bool) {
	return pick(board, func(b *chess.Board) Evaluation { return miniminValue(depth, b) }, less[Evaluation])
}

// maximaxValue scores the position after the mover's move, where the
// opponent is now to move.
func maximaxValue(depth int, board *chess.Board) Evaluation {
	if !isLeaf(depth, board) {
		if _, score, ok := miniminSearch(depth-1, board); ok {
			return -score
		}
	}
	return -flip(board.ToMove)*Evaluate(board) + 10*Evaluation(depth)
}

func miniminValue(depth int, board *chess.Board) Evaluation {
	if !isLeaf(depth, board) {
		if _, score, ok := maximaxSearch(depth-1, board); ok {
			return -score
		}
	}
	return -flip(board.ToMove)*Evaluate(board) - 10*Evaluation(depth)
}
