// Package config provides configuration for chess tournaments.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Tournament *TournamentConfig
	Output     *OutputConfig

	// Workers is the number of games played concurrently.
	Workers int

	// Verbosity selects the log level: 0 warnings, 1 game progress, 2+ search detail.
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Tournament: NewTournamentConfig(),
		Output:     NewOutputConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the report is written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream log messages are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks that the configuration can run a tournament.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) must not be negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Tournament.Validate()
}
