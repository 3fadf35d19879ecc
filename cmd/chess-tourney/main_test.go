package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-strategies-go/internal/config"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
	"github.com/lgbarn/chess-strategies-go/internal/search"
	"github.com/lgbarn/chess-strategies-go/internal/testutil"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{5, zerolog.DebugLevel},
	}

	for _, tt := range tests {
		if got := logLevel(tt.verbosity); got != tt.want {
			t.Errorf("logLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	t.Run("verbosity", func(t *testing.T) {
		defer saveRestoreBool(quiet, false)()
		var buf bytes.Buffer
		cfg := config.NewConfig()
		cfg.LogFile = &buf
		cfg.Verbosity = 1

		setupLogger(cfg)
		testutil.AssertEqual(t, zerolog.GlobalLevel(), zerolog.InfoLevel)
	})

	t.Run("quiet", func(t *testing.T) {
		defer saveRestoreBool(quiet, true)()
		var buf bytes.Buffer
		cfg := config.NewConfig()
		cfg.LogFile = &buf
		cfg.Verbosity = 2

		setupLogger(cfg)
		testutil.AssertEqual(t, zerolog.GlobalLevel(), zerolog.ErrorLevel)
	})
}

func TestRun_Text(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.Disabled)

	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithEntrants("random", "minimax:0").
		WithMaxPlies(10).
		WithGameList(true).
		WithOutput(&out).
		Build()

	testutil.AssertNoError(t, run(cfg))

	text := out.String()
	for _, want := range []string{"Tournament: 2 entrants, 2 games, seed 1", "random", "minimax:0", "Games:"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.Disabled)

	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithEntrants("maximax:0", "minimin:0", "additive:0").
		WithMaxPlies(4).
		WithJSONOutput(true).
		WithOutput(&out).
		Build()

	testutil.AssertNoError(t, run(cfg))

	var doc struct {
		Entrants  []string          `json:"entrants"`
		Standings []json.RawMessage `json:"standings"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, doc.Entrants, []string{"maximax:0", "minimin:0", "additive:0"})
	testutil.AssertEqual(t, len(doc.Standings), 3)
}

func TestRun_InvalidEntrants(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithEntrants("random", "alphazero").
		WithOutput(&out).
		Build()

	testutil.AssertErrorIs(t, run(cfg), errors.ErrUnknownStrategy)
	testutil.AssertEqual(t, out.Len(), 0, "nothing written on error")
}

func TestPrintStrategies(t *testing.T) {
	var buf bytes.Buffer
	printStrategies(&buf)
	text := buf.String()

	for _, name := range search.Names() {
		if !strings.Contains(text, "  "+name+" ") {
			t.Errorf("strategy %q not listed:\n%s", name, text)
		}
		if strategyHelp[name] == "" {
			t.Errorf("strategy %q has no help text", name)
		}
	}
}
