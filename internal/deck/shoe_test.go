package deck

import (
	"testing"

	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoeSize(t *testing.T) {
	for decks := 1; decks <= 8; decks++ {
		shoe := NewShoe(decks, randutil.New(int64(decks)))
		assert.Equal(t, decks*CardsPerDeck, shoe.CardsLeft())
	}
}

func TestShoeComposition(t *testing.T) {
	shoe := NewShoe(6, randutil.New(1))
	counts := map[Card]int{}
	for shoe.CardsLeft() > 0 {
		counts[shoe.Deal()]++
	}

	require.Len(t, counts, CardsPerDeck)
	for card, n := range counts {
		assert.Equal(t, 6, n, "card %s", card)
	}
}

func TestShoeDealUntilEmpty(t *testing.T) {
	shoe := NewShoe(1, randutil.New(3))
	for want := CardsPerDeck - 1; want >= 0; want-- {
		shoe.Deal()
		require.Equal(t, want, shoe.CardsLeft())
	}

	assert.PanicsWithValue(t, ErrShoeEmpty, func() { shoe.Deal() })
}

func TestNewShoeRejectsNoDecks(t *testing.T) {
	assert.Panics(t, func() { NewShoe(0, randutil.New(1)) })
}

func TestShoeIsSeeded(t *testing.T) {
	a := NewShoe(2, randutil.New(99))
	b := NewShoe(2, randutil.New(99))
	for a.CardsLeft() > 0 {
		require.Equal(t, a.Deal(), b.Deal())
	}
}

func TestStackedShoeDealsInOrder(t *testing.T) {
	cards := MustParseCards("As Kd 7h")
	shoe := NewStackedShoe(cards...)
	for _, want := range cards {
		assert.Equal(t, want, shoe.Deal())
	}
	assert.Zero(t, shoe.CardsLeft())
}
