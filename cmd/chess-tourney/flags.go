// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-strategies-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	listGames    = flag.Bool("g", false, "List every game after the standings")
	listMoves    = flag.Bool("m", false, "Include each game's moves (implies -g)")

	// Tournament options
	gamesPerPairing = flag.Int("n", 1, "Games per ordered pair of entrants")
	seed            = flag.Uint64("s", 1, "Seed for randomised strategies and game ids")
	maxPlies        = flag.Int("maxply", config.DefaultMaxPlies, "Draw games after this many plies (0 = no limit)")
	workers         = flag.Int("j", runtime.NumCPU(), "Number of games played in parallel")
	stopOnAbort     = flag.Bool("stop", false, "Stop the tournament at the first aborted game")

	// Logging
	logFile   = flag.String("l", "", "Write log messages to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append log messages to this file")
	verbosity = flag.Int("v", 0, "Log level: 0 warnings, 1 game results, 2 search detail")
	quiet     = flag.Bool("q", false, "Log errors only")

	// Help
	help           = flag.Bool("h", false, "Show help")
	version        = flag.Bool("version", false, "Show version")
	listStrategies = flag.Bool("strategies", false, "List the available strategies")
)

// applyFlags applies command-line flags and the entrant arguments to the
// configuration.
func applyFlags(cfg *config.Config, entrants []string) {
	applyTournamentFlags(cfg, entrants)
	applyOutputFlags(cfg)

	cfg.Workers = *workers
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyTournamentFlags configures the round robin.
func applyTournamentFlags(cfg *config.Config, entrants []string) {
	cfg.Tournament.Entrants = append([]string(nil), entrants...)
	cfg.Tournament.GamesPerPairing = *gamesPerPairing
	cfg.Tournament.Seed = *seed
	cfg.Tournament.MaxPlies = *maxPlies
	cfg.Tournament.StopOnAbort = *stopOnAbort
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ListGames = *listGames || *listMoves
	cfg.Output.ListMoves = *listMoves
}
