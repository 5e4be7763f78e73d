package strategy

import (
	"github.com/lox/blackjacksim/internal/blackjack"
	"github.com/lox/blackjacksim/internal/deck"
)

// Chart identifies which section of a Table a hand is read from
type Chart int

const (
	HardChart Chart = iota
	SoftChart
	PairChart
)

func (c Chart) String() string {
	switch c {
	case SoftChart:
		return "soft"
	case PairChart:
		return "pair"
	default:
		return "hard"
	}
}

// ChartFor classifies hand i: pairs that can currently be split read the
// pair chart, everything else reads by soft or hard total.
func ChartFor(r *blackjack.Round, i int) Chart {
	if r.CanSplit(i) {
		return PairChart
	}
	if r.Hands[i].Cards.Type() == blackjack.Soft {
		return SoftChart
	}
	return HardChart
}

// Raw returns the unresolved table entry for hand i
func (t *Table) Raw(r *blackjack.Round, i int) Decision {
	col := dealerColumn(r.UpCard())
	switch ChartFor(r, i) {
	case PairChart:
		return t.Pair[pairRow(r.Hands[i].Cards[0].Rank)][col]
	case SoftChart:
		return t.Soft[softRow(r.Hands[i].Cards.Value())][col]
	default:
		return t.Hard[hardRow(r.Hands[i].Cards.Value())][col]
	}
}

// Decide returns the action to take for hand i
func (t *Table) Decide(r *blackjack.Round, i int) (Decision, error) {
	return Resolve(t.Raw(r, i), LegalityOf(r, i))
}

// LegalityOf captures the predicates Resolve needs for hand i
func LegalityOf(r *blackjack.Round, i int) Legality {
	return Legality{
		CanHit:           r.CanHit(i),
		CanDouble:        r.CanDouble(i),
		CanSurrender:     r.CanSurrender(),
		DoubleAfterSplit: r.Rules.DoubleAfterSplit,
	}
}

func dealerColumn(up deck.Card) int {
	return up.Value() - 2
}

func hardRow(value int) int {
	return min(max(value, 4), 18) - 4
}

func softRow(value int) int {
	return min(max(value, 12), 20) - 12
}

func pairRow(rank deck.Rank) int {
	switch {
	case rank == deck.Ace:
		return 9
	case rank >= deck.Ten:
		return 8
	default:
		return int(rank) - 2
	}
}
