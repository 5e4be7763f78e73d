// Package report renders simulation results for the console and as JSON.
package report

import (
	"time"

	"github.com/lox/blackjacksim/internal/blackjack"
	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/statistics"
)

// Summary is the exported view of a finished run
type Summary struct {
	Rules      Rules      `json:"rules"`
	Simulation Simulation `json:"simulation"`
	Results    Results    `json:"results"`
}

type Rules struct {
	Decks            int    `json:"decks"`
	Penetration      int    `json:"penetration"`
	HitSoft17        bool   `json:"hit_soft_17"`
	DoubleAfterSplit bool   `json:"double_after_split"`
	Surrender        string `json:"surrender"`
	ResplitAces      bool   `json:"resplit_aces"`
	HitSplitAces     bool   `json:"hit_split_aces"`
	DoubleSplitAces  bool   `json:"double_split_aces"`
}

type Simulation struct {
	Sessions int   `json:"sessions"`
	Rounds   int   `json:"rounds_per_session"`
	Bankroll int64 `json:"bankroll"`
	Bet      int64 `json:"bet"`
	Seed     int64 `json:"seed"`
	Workers  int   `json:"workers"`
}

type Results struct {
	Sessions     int `json:"sessions"`
	StoppedEarly int `json:"stopped_early"`
	Rounds       int `json:"rounds"`
	Hands        int `json:"hands"`

	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Pushes     int `json:"pushes"`
	Surrenders int `json:"surrenders"`
	Blackjacks int `json:"blackjacks"`

	Hits    int `json:"hits"`
	Stands  int `json:"stands"`
	Doubles int `json:"doubles"`
	Splits  int `json:"splits"`

	AmountWon  int64 `json:"amount_won"`
	AmountLost int64 `json:"amount_lost"`
	Net        int64 `json:"net"`

	MeanPerRound float64    `json:"mean_per_round"`
	StdDev       float64    `json:"std_dev"`
	CI95         [2]float64 `json:"ci95"`
	EdgePercent  float64    `json:"edge_percent"`

	MedianSessionNet float64 `json:"median_session_net"`
	P05SessionNet    float64 `json:"p05_session_net"`
	P95SessionNet    float64 `json:"p95_session_net"`

	MeanFinalTrueCount float64 `json:"mean_final_true_count"`

	Elapsed         time.Duration `json:"elapsed_ns"`
	RoundsPerSecond float64       `json:"rounds_per_second"`
}

// NewSummary collects the run configuration and its statistics
func NewSummary(cfg *config.Config, workers int, stats *statistics.Statistics) Summary {
	lo, hi := stats.ConfidenceInterval95()
	return Summary{
		Rules: rulesOf(cfg.Rules),
		Simulation: Simulation{
			Sessions: cfg.Simulation.Sessions,
			Rounds:   cfg.Simulation.Rounds,
			Bankroll: cfg.Simulation.Bankroll,
			Bet:      cfg.Simulation.Bet,
			Seed:     cfg.Simulation.Seed,
			Workers:  workers,
		},
		Results: Results{
			Sessions:         stats.Sessions,
			StoppedEarly:     stats.StoppedEarly,
			Rounds:           stats.Rounds,
			Hands:            stats.Hands(),
			Wins:             stats.Wins,
			Losses:           stats.Losses,
			Pushes:           stats.Pushes,
			Surrenders:       stats.Surrenders,
			Blackjacks:       stats.Blackjacks,
			Hits:             stats.Hits,
			Stands:           stats.Stands,
			Doubles:          stats.Doubles,
			Splits:           stats.Splits,
			AmountWon:        stats.AmountWon,
			AmountLost:       stats.AmountLost,
			Net:              stats.Net(),
			MeanPerRound:     stats.Mean(),
			StdDev:           stats.StdDev(),
			CI95:             [2]float64{lo, hi},
			EdgePercent:      stats.Edge(),
			MedianSessionNet: stats.Median(),
			P05SessionNet:    stats.Percentile(0.05),
			P95SessionNet:    stats.Percentile(0.95),

			MeanFinalTrueCount: stats.MeanTrueCount(),
			Elapsed:          stats.Elapsed,
			RoundsPerSecond:  stats.RoundsPerSecond(),
		},
	}
}

func rulesOf(r blackjack.Rules) Rules {
	return Rules{
		Decks:            r.Decks,
		Penetration:      r.Penetration,
		HitSoft17:        r.HitSoft17,
		DoubleAfterSplit: r.DoubleAfterSplit,
		Surrender:        r.Surrender.String(),
		ResplitAces:      r.ResplitAces,
		HitSplitAces:     r.HitSplitAces,
		DoubleSplitAces:  r.DoubleSplitAces,
	}
}
