package tournament

import (
	"sort"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
)

// Points awarded per game.
const (
	WinPoints  = 1.0
	DrawPoints = 0.5
)

// Standing is one entrant's line in the tournament table.
type Standing struct {
	Name    string
	Played  int
	Wins    int
	Draws   int
	Losses  int
	Aborted int
	Points  float64
}

// Standings tallies the games for each named entrant and orders the table by
// points, then wins, then name. Aborted games are counted separately and
// score nothing; games naming unknown entrants are ignored.
func Standings(entrants []string, games []GameRecord) []Standing {
	table := make([]Standing, len(entrants))
	index := make(map[string]int, len(entrants))
	for i, name := range entrants {
		table[i].Name = name
		index[name] = i
	}

	for _, g := range games {
		wi, wok := index[g.White]
		bi, bok := index[g.Black]
		if !wok || !bok {
			continue
		}
		white, black := &table[wi], &table[bi]

		if g.Aborted() {
			white.Aborted++
			black.Aborted++
			continue
		}
		white.Played++
		black.Played++

		winner, decisive := g.State.Winner()
		switch {
		case g.State == chess.Draw:
			white.Draws++
			black.Draws++
			white.Points += DrawPoints
			black.Points += DrawPoints
		case decisive && winner == chess.White:
			white.Wins++
			black.Losses++
			white.Points += WinPoints
		case decisive && winner == chess.Black:
			black.Wins++
			white.Losses++
			black.Points += WinPoints
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].Wins != table[j].Wins {
			return table[i].Wins > table[j].Wins
		}
		return table[i].Name < table[j].Name
	})
	return table
}
