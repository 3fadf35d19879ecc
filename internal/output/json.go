package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/config"
	"github.com/lgbarn/chess-strategies-go/internal/processing"
	"github.com/lgbarn/chess-strategies-go/internal/tournament"
)

// JSONReport represents a tournament report in JSON format.
type JSONReport struct {
	Seed      uint64         `json:"seed"`
	Entrants  []string       `json:"entrants"`
	Standings []JSONStanding `json:"standings"`
	Games     []JSONGame     `json:"games"`
	Repeats   int            `json:"repeats"`
	Unique    int            `json:"unique"`
	Skipped   int            `json:"skipped,omitempty"`
}

// JSONStanding represents one line of the standings table.
type JSONStanding struct {
	Rank    int     `json:"rank"`
	Name    string  `json:"name"`
	Played  int     `json:"played"`
	Wins    int     `json:"wins"`
	Draws   int     `json:"draws"`
	Losses  int     `json:"losses"`
	Aborted int     `json:"aborted,omitempty"`
	Points  float64 `json:"points"`
}

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID          string     `json:"id"`
	White       string     `json:"white"`
	Black       string     `json:"black"`
	Result      string     `json:"result"`
	PlyCount    int        `json:"plyCount"`
	Adjudicated bool       `json:"adjudicated,omitempty"`
	DuplicateOf string     `json:"duplicateOf,omitempty"`
	Error       string     `json:"error,omitempty"`
	Moves       []JSONMove `json:"moves,omitempty"`
	Analysis    *JSONStats `json:"analysis,omitempty"`
}

// JSONStats summarises the features of a game's move list.
type JSONStats struct {
	Captures        int  `json:"captures"`
	Promotions      int  `json:"promotions"`
	Castles         int  `json:"castles"`
	EnPassants      int  `json:"enPassants"`
	MaxRepetitions  int  `json:"maxRepetitions"`
	LongestQuietRun uint `json:"longestQuietRun"`
	Underpromotion  bool `json:"underpromotion,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
}

// OutputReportJSON writes the report as a single indented JSON document.
func OutputReportJSON(report *tournament.Report, cfg *config.OutputConfig, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(report, cfg))
}

// ReportToJSON converts a tournament report to JSON format. Games are
// included when cfg.ListGames or cfg.ListMoves is set; moves only with
// cfg.ListMoves.
func ReportToJSON(report *tournament.Report, cfg *config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		Seed:      report.Seed,
		Entrants:  append([]string{}, report.Entrants...),
		Standings: make([]JSONStanding, 0, len(report.Standings)),
		Games:     []JSONGame{},
		Repeats:   report.Repeats,
		Unique:    report.Unique,
		Skipped:   report.Skipped,
	}

	for i, s := range report.Standings {
		jr.Standings = append(jr.Standings, JSONStanding{
			Rank:    i + 1,
			Name:    s.Name,
			Played:  s.Played,
			Wins:    s.Wins,
			Draws:   s.Draws,
			Losses:  s.Losses,
			Aborted: s.Aborted,
			Points:  s.Points,
		})
	}

	if cfg.ListGames || cfg.ListMoves {
		for _, g := range report.Games {
			jr.Games = append(jr.Games, GameToJSON(g, cfg.ListMoves))
		}
	}
	return jr
}

// GameToJSON converts a game record to JSON format. With moves, a game whose
// moves replay from the initial position also gets an analysis.
func GameToJSON(g tournament.GameRecord, withMoves bool) JSONGame {
	jg := JSONGame{
		ID:          g.ID,
		White:       g.White,
		Black:       g.Black,
		Result:      g.State.Result(),
		PlyCount:    g.Plies,
		Adjudicated: g.Adjudicated,
		DuplicateOf: g.DuplicateOf,
	}
	if g.Err != nil {
		jg.Error = g.Err.Error()
	}
	if withMoves {
		jg.Moves = make([]JSONMove, 0, len(g.Moves))
		for i, m := range g.Moves {
			jg.Moves = append(jg.Moves, convertMove(i+1, m))
		}
		if len(g.Moves) > 0 && processing.ValidateGame(chess.NewBoard(), g.Moves).Valid {
			jg.Analysis = convertAnalysis(processing.AnalyzeGame(chess.NewBoard(), g.Moves))
		}
	}
	return jg
}

func convertAnalysis(a *processing.GameAnalysis) *JSONStats {
	return &JSONStats{
		Captures:        a.Captures,
		Promotions:      a.Promotions,
		Castles:         a.Castles,
		EnPassants:      a.EnPassants,
		MaxRepetitions:  a.MaxRepetitions,
		LongestQuietRun: a.LongestQuietRun,
		Underpromotion:  a.UnderpromotionFound(),
	}
}

func convertMove(ply int, m chess.Move) JSONMove {
	jm := JSONMove{
		Ply:       ply,
		Color:     strings.ToLower(m.Player.String()),
		UCI:       m.String(),
		From:      m.From.String(),
		To:        m.To.String(),
		Piece:     pieceTypeName(m.Piece.Kind),
		Castle:    m.IsCastle(),
		EnPassant: m.IsEnPassant(),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Kind)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.Promotion.Kind)
	}
	return jm
}

// pieceTypeName returns the lowercase name of a piece kind.
func pieceTypeName(k chess.Kind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}
