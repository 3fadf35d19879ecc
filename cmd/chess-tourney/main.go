// chess-tourney plays round-robin tournaments between chess strategies.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-strategies-go/internal/config"
	"github.com/lgbarn/chess-strategies-go/internal/output"
	"github.com/lgbarn/chess-strategies-go/internal/search"
	"github.com/lgbarn/chess-strategies-go/internal/tournament"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-tourney version %s\n", programVersion)
		os.Exit(0)
	}

	if *listStrategies {
		printStrategies(os.Stdout)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupLogger(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run plays the configured tournament and writes the report.
func run(cfg *config.Config) error {
	t, err := tournament.New(cfg)
	if err != nil {
		return err
	}

	return output.NewReportWriter(cfg).WriteReport(t.Run())
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupLogger points the global zerolog logger at the log file and sets the
// level from the verbosity.
func setupLogger(cfg *config.Config) {
	log.Logger = newLogger(cfg.LogFile, cfg.LogFile != io.Writer(os.Stderr))
	level := logLevel(cfg.Verbosity)
	if *quiet {
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)
}

func newLogger(w io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// logLevel maps a verbosity count to a zerolog level.
func logLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

func printStrategies(w io.Writer) {
	fmt.Fprintf(w, "Strategies (name or name:depth, default depth %d):\n", search.DefaultDepth)
	for _, name := range search.Names() {
		fmt.Fprintf(w, "  %-9s %s\n", name, strategyHelp[name])
	}
}

var strategyHelp = map[string]string{
	"random":   "uniform choice among the available moves (takes no depth)",
	"minimax":  "assumes each side plays its best move",
	"maximax":  "assumes the opponent helps: plays for the best outcome anywhere",
	"minimin":  "plays for the worst outcome for itself",
	"single":   "ignores the opponent and plans a sequence of its own moves",
	"additive": "sums the evaluations of the whole tree below each move",
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-tourney [options] strategy strategy [strategy...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a round robin between chess strategies and reports the standings.\n")
	fmt.Fprintf(os.Stderr, "Each strategy plays every other one with both colours.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	var b strings.Builder
	printStrategies(&b)
	fmt.Fprint(os.Stderr, b.String())
}
