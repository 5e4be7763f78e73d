// Package config loads simulation settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjacksim/internal/blackjack"
)

// Config is a fully resolved simulation configuration
type Config struct {
	Rules      blackjack.Rules
	Simulation Simulation
}

// Simulation sizes the run
type Simulation struct {
	Sessions int
	Rounds   int // per session
	Bankroll int64
	Bet      int64
	Seed     int64
	Workers  int // 0 means one per CPU
}

// file mirrors the HCL layout. Every attribute is optional, so absent ones
// decode to nil and keep their default.
type file struct {
	Rules      *rulesBlock      `hcl:"rules,block"`
	Simulation *simulationBlock `hcl:"simulation,block"`
}

type rulesBlock struct {
	Decks            *int    `hcl:"decks,optional"`
	Penetration      *int    `hcl:"penetration,optional"`
	HitSoft17        *bool   `hcl:"hit_soft_17,optional"`
	DoubleAfterSplit *bool   `hcl:"double_after_split,optional"`
	Surrender        *string `hcl:"surrender,optional"`
	ResplitAces      *bool   `hcl:"resplit_aces,optional"`
	HitSplitAces     *bool   `hcl:"hit_split_aces,optional"`
	DoubleSplitAces  *bool   `hcl:"double_split_aces,optional"`
}

type simulationBlock struct {
	Sessions *int   `hcl:"sessions,optional"`
	Rounds   *int   `hcl:"rounds,optional"`
	Bankroll *int64 `hcl:"bankroll,optional"`
	Bet      *int64 `hcl:"bet,optional"`
	Seed     *int64 `hcl:"seed,optional"`
	Workers  *int   `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Rules: blackjack.DefaultRules(),
		Simulation: Simulation{
			Sessions: 12,
			Rounds:   100_000,
			Bankroll: 1_000_000,
			Bet:      10,
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source over the defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if err := raw.Rules.apply(&config.Rules); err != nil {
		return nil, err
	}
	raw.Simulation.apply(&config.Simulation)
	return config, nil
}

func (b *rulesBlock) apply(r *blackjack.Rules) error {
	if b == nil {
		return nil
	}
	set(&r.Decks, b.Decks)
	set(&r.Penetration, b.Penetration)
	set(&r.HitSoft17, b.HitSoft17)
	set(&r.DoubleAfterSplit, b.DoubleAfterSplit)
	set(&r.ResplitAces, b.ResplitAces)
	set(&r.HitSplitAces, b.HitSplitAces)
	set(&r.DoubleSplitAces, b.DoubleSplitAces)
	if b.Surrender != nil {
		s, err := blackjack.ParseSurrender(*b.Surrender)
		if err != nil {
			return fmt.Errorf("rules: %w", err)
		}
		r.Surrender = s
	}
	return nil
}

func (b *simulationBlock) apply(s *Simulation) {
	if b == nil {
		return
	}
	set(&s.Sessions, b.Sessions)
	set(&s.Rounds, b.Rounds)
	set(&s.Bankroll, b.Bankroll)
	set(&s.Bet, b.Bet)
	set(&s.Seed, b.Seed)
	set(&s.Workers, b.Workers)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the configuration can run
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	sim := c.Simulation
	if sim.Bet <= 0 || sim.Bet%2 != 0 {
		return fmt.Errorf("simulation: bet must be positive and even: %d", sim.Bet)
	}
	if sim.Bankroll <= 0 {
		return fmt.Errorf("simulation: bankroll must be positive: %d", sim.Bankroll)
	}
	if sim.Sessions < 0 {
		return fmt.Errorf("simulation: sessions must not be negative: %d", sim.Sessions)
	}
	if sim.Rounds < 0 {
		return fmt.Errorf("simulation: rounds must not be negative: %d", sim.Rounds)
	}
	if sim.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative: %d", sim.Workers)
	}
	return nil
}
