package search

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// Random picks uniformly among the pseudo-legal moves. Two Random strategies
// built from the same seed make the same choices on the same positions.
type Random struct {
	rng *frand.RNG
}

// NewRandom returns a Random strategy seeded with seed.
func NewRandom(seed uint64) *Random {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &Random{rng: frand.NewCustom(key[:], 1024, 12)}
}

// Name implements Strategy.
func (r *Random) Name() string { return "random" }

// ChooseMove implements Strategy.
func (r *Random) ChooseMove(board *chess.Board) (chess.Move, error) {
	moves := engine.AllMoves(board)
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrNoMoves
	}
	move := moves[r.rng.Intn(len(moves))]
	log.Debug().Str("strategy", r.Name()).Str("move", move.String()).Int("choices", len(moves)).Msg("random-pick")
	return move, nil
}
