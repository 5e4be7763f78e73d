package blackjack

import (
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
)

// ValueType distinguishes hard totals from soft ones
type ValueType int

const (
	Hard ValueType = iota
	Soft
)

func (v ValueType) String() string {
	if v == Soft {
		return "soft"
	}
	return "hard"
}

// Cards holds the cards of a single hand, in the order they were dealt
type Cards []deck.Card

// total returns the best total and how many aces still count 11
func (c Cards) total() (int, int) {
	total, aces := 0, 0
	for _, card := range c {
		if card.IsAce() {
			aces++
		}
		total += card.Value()
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces
}

// Value returns the hand total, demoting aces from 11 to 1 while it would
// otherwise bust.
func (c Cards) Value() int {
	total, _ := c.total()
	return total
}

// Type is Soft when an ace still counts 11 in Value
func (c Cards) Type() ValueType {
	if _, aces := c.total(); aces > 0 {
		return Soft
	}
	return Hard
}

// IsPair reports two cards of equal rank. Suits and other ten-value ranks
// do not pair.
func (c Cards) IsPair() bool {
	return len(c) == 2 && c[0].Rank == c[1].Rank
}

// IsBust reports a total over 21
func (c Cards) IsBust() bool {
	return c.Value() > 21
}

// Hit draws one card and returns its Hi-Lo tag
func (c *Cards) Hit(shoe *deck.Shoe) int {
	card := shoe.Deal()
	*c = append(*c, card)
	return card.HiLo()
}

// DealerPlay completes a dealer hand: hit below 17, and on soft 17 when
// hitSoft17 is set. It returns the Hi-Lo delta and number of cards drawn by
// this call; the two initial cards are not included.
func (c *Cards) DealerPlay(shoe *deck.Shoe, hitSoft17 bool) (delta, drawn int) {
	for {
		value := c.Value()
		if value > 17 || (value == 17 && (!hitSoft17 || c.Type() == Hard)) {
			return delta, drawn
		}
		delta += c.Hit(shoe)
		drawn++
	}
}

func (c Cards) String() string {
	parts := make([]string, len(c))
	for i, card := range c {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
