package blackjack

import "github.com/lox/blackjacksim/internal/deck"

// Count is a Hi-Lo running count. Every dealt card is counted as soon as it
// leaves the shoe, including the dealer's hole card.
type Count struct {
	Running   int
	CardsSeen int
}

// Add folds a Hi-Lo delta covering n cards into the count
func (c *Count) Add(delta, n int) {
	c.Running += delta
	c.CardsSeen += n
}

// Reset zeroes the count after a reshuffle
func (c *Count) Reset() {
	*c = Count{}
}

// TrueCount divides the running count by the decks still in the shoe.
// Fewer than half a deck is treated as half a deck.
func (c Count) TrueCount(cardsLeft int) float64 {
	decks := float64(cardsLeft) / deck.CardsPerDeck
	if decks < 0.5 {
		decks = 0.5
	}
	return float64(c.Running) / decks
}
