// Package output formats tournament reports as plain text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-strategies-go/internal/config"
	"github.com/lgbarn/chess-strategies-go/internal/tournament"
)

// DefaultLineLength is the width move lists are wrapped to.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
// Wrapped lines start with indent.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= len(indent) {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.lineLength == 0 {
		fmt.Fprint(o.w, o.indent)
		o.lineLength = len(o.indent)
	} else if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line, if anything was written to it.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes the standings table and, if configured, the game list.
func OutputReport(report *tournament.Report, cfg *config.OutputConfig, w io.Writer) {
	fmt.Fprintf(w, "Tournament: %d entrants, %d games, seed %d\n\n",
		len(report.Entrants), len(report.Games), report.Seed)
	outputStandings(report.Standings, w)
	if report.Repeats > 0 {
		fmt.Fprintf(w, "\n%d of %d games repeated an earlier game move for move, %d were unique\n",
			report.Repeats, len(report.Games), report.Unique)
	}
	if report.Skipped > 0 {
		fmt.Fprintf(w, "\nStopped at an aborted game, %d games not played\n", report.Skipped)
	}

	if cfg.ListGames || cfg.ListMoves {
		fmt.Fprintln(w)
		outputGames(report.Games, cfg.ListMoves, w)
	}
}

func outputStandings(standings []tournament.Standing, w io.Writer) {
	nameWidth := len("Entrant")
	for _, s := range standings {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	fmt.Fprintf(w, "%3s  %-*s  %6s  %4s  %5s  %4s  %7s  %6s\n",
		"#", nameWidth, "Entrant", "Played", "Won", "Drawn", "Lost", "Aborted", "Points")
	for i, s := range standings {
		fmt.Fprintf(w, "%3d  %-*s  %6d  %4d  %5d  %4d  %7d  %6.1f\n",
			i+1, nameWidth, s.Name, s.Played, s.Wins, s.Draws, s.Losses, s.Aborted, s.Points)
	}
}

func outputGames(games []tournament.GameRecord, listMoves bool, w io.Writer) {
	fmt.Fprintln(w, "Games:")
	numbers := make(map[string]int, len(games))
	for i, g := range games {
		numbers[g.ID] = i + 1
		outcome := describeOutcome(g)
		if n, ok := numbers[g.DuplicateOf]; ok && g.DuplicateOf != "" {
			outcome += fmt.Sprintf(", repeats game %d", n)
		}
		fmt.Fprintf(w, "%4d. %s - %s  %s\n", i+1, g.White, g.Black, outcome)
		if listMoves && len(g.Moves) > 0 {
			ow := NewOutputWriter(w, DefaultLineLength, "      ")
			for _, m := range g.Moves {
				ow.Write(m.String())
			}
			ow.NewLine()
		}
	}
}

// describeOutcome summarises how a game ended.
func describeOutcome(g tournament.GameRecord) string {
	switch {
	case g.Aborted():
		return fmt.Sprintf("aborted after %d plies: %v", g.Plies, g.Err)
	case g.Adjudicated:
		return fmt.Sprintf("%s  %d plies, ply limit", g.State.Result(), g.Plies)
	default:
		return fmt.Sprintf("%s  %d plies", g.State.Result(), g.Plies)
	}
}
