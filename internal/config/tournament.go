package config

import (
	"fmt"

	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// TournamentConfig holds settings for the round robin.
type TournamentConfig struct {
	// Entrants are strategy specifications such as "minimax:2" or "random".
	// The same specification may appear more than once.
	Entrants []string

	// GamesPerPairing is how many games each ordered pair of entrants plays.
	GamesPerPairing int

	// Seed derives the per-game seeds of randomised strategies.
	Seed uint64

	// MaxPlies adjudicates a game as drawn after this many plies (0 = no limit).
	MaxPlies int

	// StopOnAbort stops the run at the first aborted game. Games already
	// being played finish; the rest are skipped.
	StopOnAbort bool
}

// DefaultMaxPlies bounds games between strategies that never capture.
const DefaultMaxPlies = 400

// NewTournamentConfig creates a TournamentConfig with default values.
func NewTournamentConfig() *TournamentConfig {
	return &TournamentConfig{
		GamesPerPairing: 1,
		Seed:            1,
		MaxPlies:        DefaultMaxPlies,
	}
}

// Validate checks that the tournament configuration is valid.
func (t *TournamentConfig) Validate() error {
	if len(t.Entrants) < 2 {
		return fmt.Errorf("need at least two entrants, have %d: %w", len(t.Entrants), errors.ErrInvalidConfig)
	}
	if t.GamesPerPairing < 1 {
		return fmt.Errorf("games per pairing (%d) must be at least 1: %w", t.GamesPerPairing, errors.ErrInvalidConfig)
	}
	if t.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", t.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
