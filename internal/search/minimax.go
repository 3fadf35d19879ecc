package search

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// Minimax searches Depth plies past the candidate move, assuming each side
// plays the move that is best for itself. Depth 0 looks one ply ahead.
type Minimax struct {
	Depth int
}

// Name implements Strategy.
func (m *Minimax) Name() string {
	return fmt.Sprintf("minimax:%d", m.Depth)
}

// ChooseMove implements Strategy.
func (m *Minimax) ChooseMove(board *chess.Board) (chess.Move, error) {
	r, err := m.Search(board)
	return r.Move, err
}

// Search returns the best move for the side to move and its backed-up score,
// which is from White's point of view.
func (m *Minimax) Search(board *chess.Board) (Result, error) {
	move, score, ok := minimaxSearch(m.Depth, board.Clone())
	if !ok {
		return Result{}, errors.ErrNoMoves
	}
	log.Debug().Str("strategy", m.Name()).Str("move", move.String()).Int("score", int(score)).Msg("minimax-best")
	return Result{Move: move, Score: float64(score)}, nil
}

func minimaxSearch(depth int, board *chess.Board) (chess.Move, Evaluation, bool) {
	mover := flip(board.ToMove)
	return pick(board,
		func(b *chess.Board) Evaluation { return minimaxValue(depth, b) },
		func(candidate, best Evaluation) bool { return candidate*mover > best*mover })
}

// minimaxValue scores the position after a move. Leaves nudge the score
// towards the side to move by the remaining depth, so an earlier king capture
// outscores a later one.
func minimaxValue(depth int, board *chess.Board) Evaluation {
	if !isLeaf(depth, board) {
		if _, score, ok := minimaxSearch(depth-1, board); ok {
			return score
		}
	}
	return Evaluate(board) + flip(board.ToMove)*Evaluation(depth)
}
