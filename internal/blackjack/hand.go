package blackjack

import "github.com/lox/blackjacksim/internal/deck"

// Hand is one player hand with its wager
type Hand struct {
	Cards Cards
	Bet   int64

	// SplitFrom is the rank of the pair this hand was split from, or zero
	// for the original hand of the round.
	SplitFrom deck.Rank
}

// IsSplit reports whether the hand came from a split
func (h *Hand) IsSplit() bool {
	return h.SplitFrom != 0
}

// IsBlackjack reports a natural: an un-split two-card 21
func (h *Hand) IsBlackjack() bool {
	return !h.IsSplit() && len(h.Cards) == 2 && h.Cards.Value() == 21
}

// IsBust reports a total over 21
func (h *Hand) IsBust() bool {
	return h.Cards.IsBust()
}
