package search

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// SinglePlayer searches as if the opponent never moves: after each of its
// own moves the turn is handed straight back to the mover. It finds the
// sequence of Depth+1 moves that does the most for the mover's material.
type SinglePlayer struct {
	Depth int
}

// Name implements Strategy.
func (s *SinglePlayer) Name() string { return fmt.Sprintf("single:%d", s.Depth) }

// ChooseMove implements Strategy.
func (s *SinglePlayer) ChooseMove(board *chess.Board) (chess.Move, error) {
	r, err := s.Search(board)
	return r.Move, err
}

// Search returns the chosen move and its score from the mover's point of view.
func (s *SinglePlayer) Search(board *chess.Board) (Result, error) {
	move, score, ok := singlePlayerSearch(s.Depth, board.Clone())
	if !ok {
		return Result{}, errors.ErrNoMoves
	}
	log.Debug().Str("strategy", s.Name()).Str("move", move.String()).Int("score", int(score)).Msg("single-best")
	return Result{Move: move, Score: float64(score)}, nil
}

func singlePlayerSearch(depth int, board *chess.Board) (chess.Move, Evaluation, bool) {
	return pick(board, func(b *chess.Board) Evaluation { return singlePlayerValue(depth, b) }, greater[Evaluation])
}

// singlePlayerValue runs inside ConsiderMove, which restores the side to move
// and en passant state changed here.
func singlePlayerValue(depth int, board *chess.Board) Evaluation {
	board.ToMove = board.ToMove.Opposite()
	board.ClearEnPassant()

	if !isLeaf(depth, board) {
		if _, score, ok := singlePlayerSearch(depth-1, board); ok {
			return score
		}
	}
	return flip(board.ToMove)*Evaluate(board) + Evaluation(depth)
}
