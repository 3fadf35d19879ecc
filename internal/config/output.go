package config

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// JSONFormat writes a JSON report instead of a text table
	JSONFormat bool

	// ListGames includes one line per game after the standings
	ListGames bool

	// ListMoves includes each game's moves in the JSON report
	ListMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
