package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lox/blackjacksim/internal/game"
)

// Statistics aggregates session results of a simulation run
type Statistics struct {
	Bet int64 // standard bet, for expressing results in bets

	Sessions     int
	StoppedEarly int // sessions that hit the bankroll floor

	game.Stats

	StartingBankroll int64
	FinalBankroll    int64

	// Per-round net, summed across sessions
	SumNet  float64
	SumNet2 float64

	// Sum of each session's true count when it ended
	SumTrueCount float64

	// Per-session net, kept for median and percentiles
	SessionNets []float64

	Elapsed time.Duration
}

// New returns empty statistics for a run at the given standard bet
func New(bet int64) *Statistics {
	return &Statistics{Bet: bet}
}

// Add incorporates a finished session
func (s *Statistics) Add(result game.Result) {
	s.Sessions++
	if result.StoppedEarly {
		s.StoppedEarly++
	}

	s.Rounds += result.Rounds
	s.Wins += result.Wins
	s.Losses += result.Losses
	s.Pushes += result.Pushes
	s.Surrenders += result.Surrenders
	s.Blackjacks += result.Blackjacks
	s.Hits += result.Hits
	s.Stands += result.Stands
	s.Doubles += result.Doubles
	s.Splits += result.Splits
	s.AmountWon += result.AmountWon
	s.AmountLost += result.AmountLost

	s.StartingBankroll += result.StartingBankroll
	s.FinalBankroll += result.FinalBankroll

	s.SumNet += result.NetSum
	s.SumNet2 += result.NetSumSquares
	s.SumTrueCount += result.TrueCount
	s.SessionNets = append(s.SessionNets, float64(result.Net()))
}

// Hands is the number of settled player hands
func (s *Statistics) Hands() int {
	return s.Wins + s.Losses + s.Pushes + s.Surrenders
}

// Net is the total bankroll change across sessions
func (s *Statistics) Net() int64 {
	return s.FinalBankroll - s.StartingBankroll
}

// MeanTrueCount is the average true count sessions finished on
func (s *Statistics) MeanTrueCount() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return s.SumTrueCount / float64(s.Sessions)
}

// Mean returns the mean net result per round in chips
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of the per-round net
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation of the per-round net
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Edge returns the mean result per round as a percentage of the standard
// bet. Negative means the house is ahead.
func (s *Statistics) Edge() float64 {
	if s.Bet == 0 {
		return 0
	}
	return 100 * s.Mean() / float64(s.Bet)
}

// Rate returns n as a fraction of settled hands
func (s *Statistics) Rate(n int) float64 {
	hands := s.Hands()
	if hands == 0 {
		return 0
	}
	return float64(n) / float64(hands)
}

// RoundsPerSecond is the simulation throughput
func (s *Statistics) RoundsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Rounds) / s.Elapsed.Seconds()
}

// Median returns the median session net
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the session net at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.SessionNets) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.SessionNets))
	copy(sorted, s.SessionNets)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks the bankroll change against amounts won and lost
// and against the per-round sums.
func (s *Statistics) IsLedgerBalanced() bool {
	net := s.Net()
	return net == s.AmountWon-s.AmountLost &&
		math.Abs(s.SumNet-float64(net)) <= 1e-6
}

// Validate checks the aggregate is internally consistent
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: net=%d, won=%d, lost=%d, sumNet=%.2f",
			s.Net(), s.AmountWon, s.AmountLost, s.SumNet)
	}

	if len(s.SessionNets) != s.Sessions {
		return fmt.Errorf("session nets length (%d) does not match sessions (%d)",
			len(s.SessionNets), s.Sessions)
	}

	if s.StoppedEarly > s.Sessions {
		return fmt.Errorf("stopped sessions (%d) exceed sessions (%d)", s.StoppedEarly, s.Sessions)
	}

	if hands, want := s.Hands(), s.Rounds+s.Splits; hands != want {
		return fmt.Errorf("settled hands (%d) do not match rounds plus splits (%d)", hands, want)
	}

	if s.Blackjacks > s.Wins {
		return fmt.Errorf("blackjacks (%d) exceed wins (%d)", s.Blackjacks, s.Wins)
	}

	return nil
}
