// Package simulator runs many independent blackjack sessions in parallel and
// aggregates their results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/blackjack"
	"github.com/lox/blackjacksim/internal/game"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/statistics"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Config holds configuration for running simulations
type Config struct {
	Rules    blackjack.Rules
	Sessions int
	Rounds   int // per session
	Bankroll int64
	Bet      int64
	Seed     int64

	// Workers bounds concurrent sessions. Defaults to the number of CPUs.
	Workers int

	Logger *log.Logger
	Clock  quartz.Clock
}

// Simulator runs blackjack session simulations
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

// Workers returns the effective worker count
func (s *Simulator) Workers() int { return s.config.Workers }

// Run plays every session and returns the aggregate. Session i is seeded from
// the master seed and i alone, so the result does not depend on the number of
// workers. Cancelling ctx stops new sessions from starting.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.config
	if cfg.Sessions < 0 {
		return nil, fmt.Errorf("sessions must not be negative: %d", cfg.Sessions)
	}

	table, err := strategy.ForRules(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("selecting strategy: %w", err)
	}

	start := s.clock.Now()
	s.logger.Info("Starting simulation",
		"sessions", cfg.Sessions,
		"rounds", cfg.Rounds,
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	results := make([]game.Result, cfg.Sessions)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := 0; i < cfg.Sessions; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.playSession(table, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := statistics.New(cfg.Bet)
	for _, result := range results {
		stats.Add(result)
	}
	stats.Elapsed = s.clock.Since(start)

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete",
		"rounds", stats.Rounds,
		"edge", fmt.Sprintf("%.3f%%", stats.Edge()),
		"elapsed", stats.Elapsed)

	return stats, nil
}

// playSession plays session i to completion on its own RNG stream. The table
// is read-only and shared by all sessions.
func (s *Simulator) playSession(table *strategy.Table, i int) (game.Result, error) {
	cfg := s.config
	session, err := game.New(game.Options{
		Rules:    cfg.Rules,
		Bankroll: cfg.Bankroll,
		Bet:      cfg.Bet,
		Rounds:   cfg.Rounds,
		Table:    table,
		Rand:     randutil.Derive(cfg.Seed, i),
		ID:       fmt.Sprintf("%d-%d", cfg.Seed, i),
		Logger:   s.logger,
	})
	if err != nil {
		return game.Result{}, err
	}

	result, err := session.Play()
	if err != nil {
		return result, err
	}

	s.logger.Debug("Session complete",
		"session", result.ID,
		"rounds", result.Rounds,
		"net", result.Net(),
		"netPerRound", fmt.Sprintf("%.4f", result.NetPerRound()),
		"trueCount", fmt.Sprintf("%.2f", result.TrueCount),
		"stoppedEarly", result.StoppedEarly)
	return result, nil
}
