package game

import "math"

// Result is the final state of a session
type Result struct {
	ID string
	Stats

	StartingBankroll int64
	FinalBankroll    int64
	StoppedEarly     bool // bankroll floor reached before all rounds were played

	RunningCount int
	TrueCount    float64 // running count per deck left in the final shoe
	CardsSeen    int

	// Per-round net sums for variance across sessions
	NetSum        float64
	NetSumSquares float64
}

// Result snapshots the session
func (g *Game) Result() Result {
	return Result{
		ID:               g.id,
		Stats:            g.stats,
		StartingBankroll: g.startingBankroll,
		FinalBankroll:    g.bankroll,
		StoppedEarly:     g.stoppedEarly,
		RunningCount:     g.count.Running,
		TrueCount:        g.count.TrueCount(g.shoe.CardsLeft()),
		CardsSeen:        g.count.CardsSeen,
		NetSum:           g.netSum,
		NetSumSquares:    g.netSumSquares,
	}
}

// Net is the bankroll change over the session
func (r Result) Net() int64 {
	return r.FinalBankroll - r.StartingBankroll
}

// NetPerRound is the mean bankroll change per round
func (r Result) NetPerRound() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Net()) / float64(r.Rounds)
}

// IsLedgerBalanced checks the bankroll change matches amounts won and lost
func (r Result) IsLedgerBalanced() bool {
	return r.Net() == r.AmountWon-r.AmountLost &&
		math.Abs(r.NetSum-float64(r.Net())) <= 1e-6
}
