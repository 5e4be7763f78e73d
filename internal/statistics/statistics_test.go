package statistics

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/lox/blackjacksim/internal/game"
)

func result(rounds, wins, losses int, won, lost int64) game.Result {
	net := won - lost
	return game.Result{
		Stats: game.Stats{
			Rounds:     rounds,
			Wins:       wins,
			Losses:     losses,
			Pushes:     rounds - wins - losses,
			AmountWon:  won,
			AmountLost: lost,
		},
		StartingBankroll: 1000,
		FinalBankroll:    1000 + net,
		NetSum:           float64(net),
		NetSumSquares:    float64(net * net),
	}
}

func TestStatistics_Empty(t *testing.T) {
	stats := New(10)

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Rate(0) != 0 {
		t.Errorf("Expected rate of 0 for empty stats, got %f", stats.Rate(0))
	}
	if stats.RoundsPerSecond() != 0 {
		t.Errorf("Expected throughput of 0 without elapsed time, got %f", stats.RoundsPerSecond())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected empty stats to validate, got %v", err)
	}
}

func TestStatistics_SingleRound(t *testing.T) {
	stats := New(10)
	stats.Add(result(1, 1, 0, 15, 0))

	if stats.Sessions != 1 {
		t.Errorf("Expected 1 session, got %d", stats.Sessions)
	}
	if stats.Mean() != 15 {
		t.Errorf("Expected mean of 15, got %f", stats.Mean())
	}
	if stats.Edge() != 150 {
		t.Errorf("Expected edge of 150%%, got %f", stats.Edge())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single round, got %f", stats.Variance())
	}
	if !stats.IsLedgerBalanced() {
		t.Error("Expected ledger to be balanced")
	}
}

func TestStatistics_Aggregates(t *testing.T) {
	stats := New(10)

	// Per-round nets across both sessions: +10, -10, +10, -10
	a := result(2, 1, 1, 10, 10)
	a.NetSum, a.NetSumSquares = 0, 200
	b := result(2, 1, 1, 10, 10)
	b.NetSum, b.NetSumSquares = 0, 200
	stats.Add(a)
	stats.Add(b)

	if stats.Rounds != 4 {
		t.Errorf("Expected 4 rounds, got %d", stats.Rounds)
	}
	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0, got %f", stats.Mean())
	}

	// Sample variance of {10,-10,10,-10} = 400/3
	if math.Abs(stats.Variance()-400.0/3) > 1e-9 {
		t.Errorf("Expected variance 133.33, got %f", stats.Variance())
	}

	lo, hi := stats.ConfidenceInterval95()
	if lo >= 0 || hi <= 0 || math.Abs(lo+hi) > 1e-9 {
		t.Errorf("Expected symmetric interval around 0, got [%f, %f]", lo, hi)
	}

	if stats.MeanTrueCount() != 0 {
		t.Errorf("Expected mean true count 0 without counts, got %f", stats.MeanTrueCount())
	}

	if rate := stats.Rate(stats.Wins); rate != 0.5 {
		t.Errorf("Expected win rate 0.5, got %f", rate)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := New(10)
	for _, net := range []int64{-30, 10, -10, 50, 0} {
		won, lost := int64(0), int64(0)
		if net > 0 {
			won = net
		} else {
			lost = -net
		}
		stats.Add(result(1, 0, 0, won, lost))
	}

	if stats.Median() != 0 {
		t.Errorf("Expected median 0, got %f", stats.Median())
	}
	if stats.Percentile(0) != -30 {
		t.Errorf("Expected p0 -30, got %f", stats.Percentile(0))
	}
	if stats.Percentile(1) != 50 {
		t.Errorf("Expected p100 50, got %f", stats.Percentile(1))
	}
	if stats.Percentile(0.25) != -10 {
		t.Errorf("Expected p25 -10, got %f", stats.Percentile(0.25))
	}
}

func TestStatistics_StoppedEarly(t *testing.T) {
	stats := New(10)
	r := result(3, 0, 3, 0, 30)
	r.NetSumSquares = 300
	r.StoppedEarly = true
	stats.Add(r)
	stats.Add(result(1, 1, 0, 10, 0))

	if stats.MeanTrueCount() != 0 {
		t.Errorf("Expected mean true count 0, got %f", stats.MeanTrueCount())
	}
	if stats.StoppedEarly != 1 {
		t.Errorf("Expected 1 stopped session, got %d", stats.StoppedEarly)
	}
	if stats.Net() != -20 {
		t.Errorf("Expected net -20, got %d", stats.Net())
	}
}

func TestStatistics_MeanTrueCount(t *testing.T) {
	stats := New(10)
	if stats.MeanTrueCount() != 0 {
		t.Errorf("Expected 0 for no sessions, got %f", stats.MeanTrueCount())
	}

	a := result(1, 1, 0, 10, 0)
	a.TrueCount = 1.5
	b := result(1, 0, 1, 0, 10)
	b.TrueCount = -0.5
	stats.Add(a)
	stats.Add(b)

	if stats.MeanTrueCount() != 0.5 {
		t.Errorf("Expected mean true count 0.5, got %f", stats.MeanTrueCount())
	}
}

func TestStatistics_Throughput(t *testing.T) {
	stats := New(10)
	stats.Add(result(1000, 500, 500, 5000, 5000))
	stats.Elapsed = 2 * time.Second

	if stats.RoundsPerSecond() != 500 {
		t.Errorf("Expected 500 rounds/s, got %f", stats.RoundsPerSecond())
	}
}

func TestStatistics_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Statistics)
		want   string
	}{
		{"ledger", func(s *Statistics) { s.AmountWon++ }, "ledger mismatch"},
		{"session nets", func(s *Statistics) { s.SessionNets = nil }, "session nets"},
		{"stopped", func(s *Statistics) { s.StoppedEarly = 5 }, "stopped sessions"},
		{"hands", func(s *Statistics) { s.Splits = 3 }, "settled hands"},
		{"blackjacks", func(s *Statistics) { s.Blackjacks = 99 }, "blackjacks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := New(10)
			stats.Add(result(4, 2, 1, 20, 10))
			tt.mutate(stats)

			err := stats.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
