package tournament

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/config"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
	"github.com/lgbarn/chess-strategies-go/internal/hashing"
	"github.com/lgbarn/chess-strategies-go/internal/processing"
	"github.com/lgbarn/chess-strategies-go/internal/search"
	"github.com/lgbarn/chess-strategies-go/internal/worker"
)

// gameNamespace scopes the name-based game IDs, so a tournament replayed
// with the same seed reports the same IDs.
var gameNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("chess-strategies-go/game"))

// Entrant is one participant of a tournament.
type Entrant struct {
	Name    string // Unique within the tournament
	Spec    string // Specification the entrant was built from
	factory search.Factory
}

// GameRecord describes one played game.
type GameRecord struct {
	ID          string
	White       string
	Black       string
	State       chess.WinState
	Plies       int
	Moves       []chess.Move
	Adjudicated bool
	DuplicateOf string // ID of an earlier game with the same moves, if any
	Err         error  // Non-nil for aborted games, which count towards no one's score
}

// Aborted returns true if the game did not finish.
func (g GameRecord) Aborted() bool {
	return g.Err != nil
}

// Report is the full result of a tournament.
type Report struct {
	Seed      uint64
	Entrants  []string
	Games     []GameRecord
	Standings []Standing
	Repeats   int // Games that repeated an earlier game move for move
	Unique    int // Finished games that repeated no earlier game
	Skipped   int // Scheduled games not played because the run was stopped
}

// Tournament is a round robin between strategies. Every ordered pair of
// distinct entrants plays GamesPerPairing games, so each pairing is played
// with both colours.
type Tournament struct {
	entrants []Entrant
	cfg      config.TournamentConfig
	workers  int
	repeats  *hashing.DuplicateDetector
}

// New builds a tournament from the configuration, parsing every entrant's
// strategy specification.
func New(cfg *config.Config) (*Tournament, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entrants := make([]Entrant, 0, len(cfg.Tournament.Entrants))
	for _, spec := range cfg.Tournament.Entrants {
		factory, err := search.ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		entrants = append(entrants, Entrant{Spec: spec, factory: factory})
	}
	nameEntrants(entrants)

	return &Tournament{
		entrants: entrants,
		cfg:      *cfg.Tournament,
		workers:  cfg.Workers,
		repeats:  hashing.NewDuplicateDetector(),
	}, nil
}

// nameEntrants names each entrant after its strategy, numbering entrants
// that share a name.
func nameEntrants(entrants []Entrant) {
	counts := make(map[string]int)
	for i := range entrants {
		counts[entrants[i].factory(0).Name()]++
	}
	seen := make(map[string]int)
	for i := range entrants {
		name := entrants[i].factory(0).Name()
		if counts[name] > 1 {
			seen[name]++
			name = name + "#" + strconv.Itoa(seen[name])
		}
		entrants[i].Name = name
	}
}

// Entrants returns the tournament's participants in configuration order.
func (t *Tournament) Entrants() []Entrant {
	return append([]Entrant(nil), t.entrants...)
}

// Schedule lists the games of the tournament in playing order.
func (t *Tournament) Schedule() []worker.WorkItem {
	var items []worker.WorkItem
	for white := range t.entrants {
		for black := range t.entrants {
			if white == black {
				continue
			}
			for round := 0; round < t.cfg.GamesPerPairing; round++ {
				index := len(items)
				items = append(items, worker.WorkItem{
					Index:  index,
					GameID: gameID(t.cfg.Seed, index),
					White:  white,
					Black:  black,
					Seed:   gameSeed(t.cfg.Seed, index),
				})
			}
		}
	}
	return items
}

func gameID(seed uint64, index int) string {
	return uuid.NewSHA1(gameNamespace, []byte(fmt.Sprintf("%d/%d", seed, index))).String()
}

// gameSeed spreads the tournament seed over the games with the splitmix64
// increment.
func gameSeed(seed uint64, index int) uint64 {
	return seed + uint64(index+1)*0x9E3779B97F4A7C15
}

// Run plays every scheduled game on the worker pool and aggregates the
// results. Aborted games are logged and recorded; they stop the run only
// when StopOnAbort is set, in which case games not yet started are skipped.
// Run may be called again and replays the same schedule.
func (t *Tournament) Run() *Report {
	schedule := t.Schedule()
	log.Info().
		Int("entrants", len(t.entrants)).
		Int("games", len(schedule)).
		Int("workers", t.workers).
		Uint64("seed", t.cfg.Seed).
		Msg("tournament-start")

	var pool *worker.Pool
	play := func(item worker.WorkItem) worker.ProcessResult {
		r := t.playItem(item)
		if r.Error != nil && t.cfg.StopOnAbort {
			pool.Stop()
		}
		return r
	}
	pool = worker.NewPool(play,
		worker.WithWorkers(t.workers),
		worker.WithBufferSize(2*t.workers))
	results := pool.PlayAll(schedule)

	report := &Report{Seed: t.cfg.Seed, Skipped: len(schedule) - len(results)}
	for _, e := range t.entrants {
		report.Entrants = append(report.Entrants, e.Name)
	}
	t.repeats.Reset()
	for _, r := range results {
		g := t.record(r)
		if r.Error == nil {
			final := processing.ReplayGame(chess.NewBoard(), r.Moves)
			g.DuplicateOf, _ = t.repeats.CheckAndAdd(hashing.NewSignature(g.ID, final, r.Moves))
		}
		report.Games = append(report.Games, g)
	}
	report.Repeats = t.repeats.DuplicateCount()
	report.Unique = t.repeats.UniqueCount()
	report.Standings = Standings(report.Entrants, report.Games)

	if report.Skipped > 0 {
		log.Warn().Int("skipped", report.Skipped).Msg("tournament-stopped")
	}
	log.Info().
		Int("games", len(report.Games)).
		Int("repeats", report.Repeats).
		Int("unique", report.Unique).
		Msg("tournament-done")
	return report
}

// playItem is the worker function. Each call builds its own strategy
// instances, so games share nothing.
func (t *Tournament) playItem(item worker.WorkItem) worker.ProcessResult {
	white, black := t.entrants[item.White], t.entrants[item.Black]
	logger := log.With().Str("game", item.GameID).Str("white", white.Name).Str("black", black.Name).Logger()
	logger.Debug().Msg("game-start")

	result, err := PlayGame(white.factory(item.Seed), black.factory(item.Seed+1), t.cfg.MaxPlies)
	if err != nil {
		var gameErr *errors.GameError
		if errors.As(err, &gameErr) {
			gameErr.GameID = item.GameID
		}
		logger.Warn().Err(err).Int("plies", result.Plies).Msg("game-aborted")
	} else {
		logger.Info().
			Str("result", result.State.Result()).
			Int("plies", result.Plies).
			Bool("adjudicated", result.Adjudicated).
			Msg("game-done")
	}

	return worker.ProcessResult{
		Item:        item,
		State:       result.State,
		Plies:       result.Plies,
		Moves:       result.Moves,
		Adjudicated: result.Adjudicated,
		Error:       err,
	}
}

func (t *Tournament) record(r worker.ProcessResult) GameRecord {
	return GameRecord{
		ID:          r.Item.GameID,
		White:       t.entrants[r.Item.White].Name,
		Black:       t.entrants[r.Item.Black].Name,
		State:       r.State,
		Plies:       r.Plies,
		Moves:       r.Moves,
		Adjudicated: r.Adjudicated,
		Err:         r.Error,
	}
}
