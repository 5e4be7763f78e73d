package blackjack

import "github.com/lox/blackjacksim/internal/deck"

// newTestRound builds a round with a single player hand, a fixed dealer hand
// and a stacked shoe that deals the given cards in order.
func newTestRound(rules Rules, player, dealer, shoe string) *Round {
	return &Round{
		Rules:  rules,
		Shoe:   deck.NewStackedShoe(deck.MustParseCards(shoe)...),
		Dealer: Cards(deck.MustParseCards(dealer)),
		Hands: []Hand{{
			Cards: Cards(deck.MustParseCards(player)),
			Bet:   10,
		}},
	}
}

func cards(s string) Cards {
	return Cards(deck.MustParseCards(s))
}
