package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithEntrants sets the strategy specifications that take part.
func (b *ConfigBuilder) WithEntrants(specs ...string) *ConfigBuilder {
	b.cfg.Tournament.Entrants = append([]string(nil), specs...)
	return b
}

// WithGamesPerPairing sets how many games each ordered pair plays.
func (b *ConfigBuilder) WithGamesPerPairing(n int) *ConfigBuilder {
	b.cfg.Tournament.GamesPerPairing = n
	return b
}

// WithSeed sets the tournament seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Tournament.Seed = seed
	return b
}

// WithMaxPlies sets the ply limit after which games are drawn.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Tournament.MaxPlies = plies
	return b
}

// WithStopOnAbort stops the tournament at the first aborted game.
func (b *ConfigBuilder) WithStopOnAbort(enabled bool) *ConfigBuilder {
	b.cfg.Tournament.StopOnAbort = enabled
	return b
}

// WithWorkers sets the number of games played concurrently.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithGameList includes the individual game results in the report.
func (b *ConfigBuilder) WithGameList(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListGames = enabled
	return b
}

// WithMoveList includes each game's moves in the report, text or JSON.
// Listing moves also lists the games.
func (b *ConfigBuilder) WithMoveList(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
