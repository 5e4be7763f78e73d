package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacksim/internal/blackjack"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.NoError(t, config.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.hcl")
	src := `
rules {
  decks = 8
  penetration = 104
  double_after_split = false
  surrender = "late"
}

simulation {
  sessions = 4
  rounds = 2500
  bet = 20
  seed = 42
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, blackjack.Rules{
		Decks:       8,
		Penetration: 104,
		Surrender:   blackjack.SurrenderLate,
	}, config.Rules)

	assert.Equal(t, Simulation{
		Sessions: 4,
		Rounds:   2500,
		Bankroll: 1_000_000,
		Bet:      20,
		Seed:     42,
	}, config.Simulation)
	assert.NoError(t, config.Validate())
}

func TestParsePartialBlocksKeepDefaults(t *testing.T) {
	config, err := Parse([]byte("rules {\n  hit_soft_17 = true\n}\n"), "partial.hcl")
	require.NoError(t, err)

	want := blackjack.DefaultRules()
	want.HitSoft17 = true
	assert.Equal(t, want, config.Rules)
	assert.Equal(t, Default().Simulation, config.Simulation)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "rules {", "failed to parse"},
		{"unknown attribute", "rules {\n  jokers = 2\n}\n", "failed to decode"},
		{"wrong type", "simulation {\n  rounds = \"many\"\n}\n", "failed to decode"},
		{"unknown surrender", "rules {\n  surrender = \"sometimes\"\n}\n", "unknown surrender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero decks", func(c *Config) { c.Rules.Decks = 0 }, "decks"},
		{"penetration too deep", func(c *Config) { c.Rules.Penetration = 6 * 52 }, "penetration"},
		{"odd bet", func(c *Config) { c.Simulation.Bet = 5 }, "bet"},
		{"zero bet", func(c *Config) { c.Simulation.Bet = 0 }, "bet"},
		{"zero bankroll", func(c *Config) { c.Simulation.Bankroll = 0 }, "bankroll"},
		{"negative sessions", func(c *Config) { c.Simulation.Sessions = -1 }, "sessions"},
		{"negative rounds", func(c *Config) { c.Simulation.Rounds = -1 }, "rounds"},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
