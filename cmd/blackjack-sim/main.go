package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/report"
	"github.com/lox/blackjacksim/internal/simulator"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`

	Config   string `short:"c" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" help:"Path to HCL configuration file"`
	Sessions *int   `short:"s" env:"BLACKJACK_SESSIONS" help:"Number of sessions (overrides config)"`
	Rounds   *int   `short:"r" env:"BLACKJACK_ROUNDS" help:"Rounds per session (overrides config)"`
	Bankroll *int64 `env:"BLACKJACK_BANKROLL" help:"Starting bankroll per session (overrides config)"`
	Bet      *int64 `env:"BLACKJACK_BET" help:"Standard bet, positive and even (overrides config)"`
	Seed     *int64 `env:"BLACKJACK_SEED" help:"Master RNG seed (overrides config)"`
	Workers  *int   `short:"w" env:"BLACKJACK_WORKERS" help:"Concurrent sessions, 0 for one per CPU (overrides config)"`
	Output   string `short:"o" env:"BLACKJACK_OUTPUT" type:"path" help:"Write a JSON report to this file"`
	NoColor  bool   `env:"NO_COLOR" help:"Disable coloured output"`
	Verbose  bool   `short:"v" env:"BLACKJACK_VERBOSE" help:"Debug logging"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("Failed to load .env", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack-sim"),
		kong.Description("Monte Carlo blackjack simulator playing basic strategy"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(cli)
	ctx.FatalIfErrorf(err)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Rules:    cfg.Rules,
		Sessions: cfg.Simulation.Sessions,
		Rounds:   cfg.Simulation.Rounds,
		Bankroll: cfg.Simulation.Bankroll,
		Bet:      cfg.Simulation.Bet,
		Seed:     cfg.Simulation.Seed,
		Workers:  cfg.Simulation.Workers,
		Logger:   logger,
	})

	stats, err := sim.Run(runCtx)
	ctx.FatalIfErrorf(err)

	summary := report.NewSummary(cfg, sim.Workers(), stats)
	ctx.FatalIfErrorf(report.WriteConsole(os.Stdout, summary, report.ConsoleOptions{NoColor: cli.NoColor}))

	if cli.Output != "" {
		ctx.FatalIfErrorf(report.WriteJSON(cli.Output, summary))
		logger.Info("Wrote report", "path", cli.Output)
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	sim := &cfg.Simulation
	override(&sim.Sessions, cli.Sessions)
	override(&sim.Rounds, cli.Rounds)
	override(&sim.Bankroll, cli.Bankroll)
	override(&sim.Bet, cli.Bet)
	override(&sim.Seed, cli.Seed)
	override(&sim.Workers, cli.Workers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
