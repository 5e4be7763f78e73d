package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = 52

// ErrShoeEmpty is the panic value raised when dealing from an exhausted shoe.
// Penetration limits should make it unreachable.
var ErrShoeEmpty = errors.New("no cards left in shoe")

// Shoe is a pool of one or more shuffled decks. Cards are dealt from the end
// of the slice; the shuffle makes any draw order equivalent.
type Shoe struct {
	cards []Card
}

// NewShoe builds a shoe of the given number of decks and shuffles it once
// with rng. It panics if decks is not positive.
func NewShoe(decks int, rng *rand.Rand) *Shoe {
	if decks <= 0 {
		panic(fmt.Sprintf("deck: shoe needs at least one deck, got %d", decks))
	}

	shoe := &Shoe{
		cards: make([]Card, 0, decks*CardsPerDeck),
	}
	for range decks {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				shoe.cards = append(shoe.cards, NewCard(suit, rank))
			}
		}
	}

	rng.Shuffle(len(shoe.cards), func(i, j int) {
		shoe.cards[i], shoe.cards[j] = shoe.cards[j], shoe.cards[i]
	})
	return shoe
}

// NewStackedShoe returns a shoe that deals the given cards in order, first
// card first. It is not shuffled.
func NewStackedShoe(cards ...Card) *Shoe {
	shoe := &Shoe{cards: make([]Card, len(cards))}
	for i, card := range cards {
		shoe.cards[len(cards)-1-i] = card
	}
	return shoe
}

// Deal removes and returns one card. It panics with ErrShoeEmpty when the
// shoe is exhausted.
func (s *Shoe) Deal() Card {
	n := len(s.cards)
	if n == 0 {
		panic(ErrShoeEmpty)
	}
	card := s.cards[n-1]
	s.cards = s.cards[:n-1]
	return card
}

// CardsLeft returns the number of undealt cards
func (s *Shoe) CardsLeft() int {
	return len(s.cards)
}
