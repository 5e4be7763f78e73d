package blackjack

import (
	"slices"

	"github.com/lox/blackjacksim/internal/deck"
)

// MaxSplits is the number of splits allowed in one round (four hands)
const MaxSplits = 3

// Round is the state of a single round: the shoe it deals from, the dealer
// hand and the player hands. Hands only grow, through splits.
type Round struct {
	Rules       Rules
	Shoe        *deck.Shoe
	Dealer      Cards
	Hands       []Hand
	SplitAces   bool // aces have been split this round
	Surrendered bool
}

// NewRound deals a fresh round with one player hand: player, dealer, player,
// dealer. It returns the round and the Hi-Lo delta of the four cards.
func NewRound(rules Rules, shoe *deck.Shoe, bet int64) (*Round, int) {
	r := &Round{
		Rules:  rules,
		Shoe:   shoe,
		Dealer: make(Cards, 0, 6),
		Hands:  make([]Hand, 1, MaxSplits+1),
	}
	r.Hands[0] = Hand{Cards: make(Cards, 0, 6), Bet: bet}

	delta := r.Hands[0].Cards.Hit(shoe)
	delta += r.Dealer.Hit(shoe)
	delta += r.Hands[0].Cards.Hit(shoe)
	delta += r.Dealer.Hit(shoe)
	return r, delta
}

// UpCard is the dealer's face-up card
func (r *Round) UpCard() deck.Card {
	return r.Dealer[0]
}

// Splits returns how many splits have happened this round
func (r *Round) Splits() int {
	return len(r.Hands) - 1
}

// CanSplit reports whether hand i may be split
func (r *Round) CanSplit(i int) bool {
	hand := &r.Hands[i]
	if !hand.Cards.IsPair() {
		return false
	}
	if hand.Cards[0].IsAce() && r.SplitAces && !r.Rules.ResplitAces {
		return false
	}
	return r.Splits() < MaxSplits
}

// CanDouble reports whether hand i may be doubled
func (r *Round) CanDouble(i int) bool {
	hand := &r.Hands[i]
	if len(hand.Cards) != 2 {
		return false
	}
	if hand.SplitFrom == deck.Ace && !r.Rules.DoubleSplitAces {
		return false
	}
	if r.Splits() > 0 && !r.Rules.DoubleAfterSplit {
		return false
	}
	return true
}

// CanSurrender reports whether the round may be surrendered. Only the
// original two-card hand can surrender; once any split has happened
// surrender stays unavailable for the rest of the round.
func (r *Round) CanSurrender() bool {
	if r.Rules.Surrender == SurrenderNone || r.Surrendered {
		return false
	}
	if r.Splits() != 0 {
		return false
	}
	return len(r.Hands[0].Cards) == 2
}

// CanHit reports whether hand i may take another card
func (r *Round) CanHit(i int) bool {
	if r.Splits() > 0 && !r.Rules.HitSplitAces && r.Hands[i].SplitFrom == deck.Ace {
		return false
	}
	return true
}

// Split moves the second card of pair i into a new hand placed right after
// it, deals one card to each and returns the Hi-Lo delta of those cards.
func (r *Round) Split(i int) int {
	hand := &r.Hands[i]
	moved := hand.Cards[1]
	rank := moved.Rank

	hand.Cards = hand.Cards[:1]
	hand.SplitFrom = rank
	delta := hand.Cards.Hit(r.Shoe)

	split := Hand{
		Cards:     make(Cards, 1, 6),
		Bet:       hand.Bet,
		SplitFrom: rank,
	}
	split.Cards[0] = moved
	delta += split.Cards.Hit(r.Shoe)

	if rank == deck.Ace {
		r.SplitAces = true
	}
	r.Hands = slices.Insert(r.Hands, i+1, split)
	return delta
}

// Double doubles the bet on hand i and deals it exactly one card. The hand
// must stand afterwards.
func (r *Round) Double(i int) int {
	hand := &r.Hands[i]
	hand.Bet *= 2
	return hand.Cards.Hit(r.Shoe)
}

// Hit deals one card to hand i
func (r *Round) Hit(i int) int {
	return r.Hands[i].Cards.Hit(r.Shoe)
}

// Surrender gives up the round
func (r *Round) Surrender() {
	r.Surrendered = true
}

// PlayDealer completes the dealer hand under the round's rules
func (r *Round) PlayDealer() (delta, drawn int) {
	return r.Dealer.DealerPlay(r.Shoe, r.Rules.HitSoft17)
}
