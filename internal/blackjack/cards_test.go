package blackjack

import (
	"testing"

	"github.com/lox/blackjacksim/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestCardsValue(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		value int
		typ   ValueType
		bust  bool
	}{
		{"soft seventeen", "As 6d", 17, Soft, false},
		{"ace demoted after draw", "As 6d Kh", 17, Hard, false},
		{"hard twenty", "Ks Qd", 20, Hard, false},
		{"natural", "Ah Jc", 21, Soft, false},
		{"pair of aces", "As Ad", 12, Soft, false},
		{"two aces and a ten", "As Ad Kc", 12, Hard, false},
		{"three aces", "As Ad Ac", 13, Soft, false},
		{"bust", "Ks Qd 2c", 22, Hard, true},
		{"no aces soft never", "5s 6d", 11, Hard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cards(tt.cards)
			assert.Equal(t, tt.value, c.Value())
			assert.Equal(t, tt.typ, c.Type())
			assert.Equal(t, tt.bust, c.IsBust())
		})
	}
}

func TestCardsIsPair(t *testing.T) {
	assert.True(t, cards("9s 9h").IsPair())
	assert.True(t, cards("As Ad").IsPair())
	assert.False(t, cards("Ks Qs").IsPair(), "ten-value ranks are not a pair")
	assert.False(t, cards("9s 9h 9d").IsPair())
	assert.False(t, cards("9s").IsPair())
}

func TestCardsHitReturnsHiLo(t *testing.T) {
	shoe := deck.NewStackedShoe(deck.MustParseCards("5s Kd 8c")...)
	var c Cards
	assert.Equal(t, 1, c.Hit(shoe))
	assert.Equal(t, -1, c.Hit(shoe))
	assert.Equal(t, 0, c.Hit(shoe))
	assert.Len(t, c, 3)
	assert.Zero(t, shoe.CardsLeft())
}

func TestDealerPlay(t *testing.T) {
	tests := []struct {
		name      string
		dealer    string
		shoe      string
		hitSoft17 bool
		drawn     int
		delta     int
		value     int
	}{
		{"stands on soft 17 under s17", "As 6d", "2c", false, 0, 0, 17},
		{"hits soft 17 under h17", "As 6d", "2c", true, 1, 1, 19},
		{"stands on hard 17 under h17", "Ts 7d", "2c", true, 0, 0, 17},
		{"stands on ace six ten under h17", "As 6d Kc", "2c", true, 0, 0, 17},
		{"hits to seventeen", "Ts 5d", "2c 9h", false, 1, 1, 17},
		{"hits until bust", "Ts 6d", "8c", false, 1, 0, 24},
		{"multi card draw", "2s 3d", "4c 4h Kd", false, 3, 1, 23},
		{"stands on eighteen", "Ts 8d", "2c", true, 0, 0, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealer := cards(tt.dealer)
			shoe := deck.NewStackedShoe(deck.MustParseCards(tt.shoe)...)
			delta, drawn := dealer.DealerPlay(shoe, tt.hitSoft17)
			assert.Equal(t, tt.drawn, drawn)
			assert.Equal(t, tt.delta, delta)
			assert.Equal(t, tt.value, dealer.Value())
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	natural := Hand{Cards: cards("As Kd")}
	assert.True(t, natural.IsBlackjack())

	split := Hand{Cards: cards("As Kd"), SplitFrom: deck.Ace}
	assert.False(t, split.IsBlackjack(), "split 21 is not a natural")

	three := Hand{Cards: cards("7s 7d 7c")}
	assert.False(t, three.IsBlackjack())
}

func TestCountReset(t *testing.T) {
	c := Count{Running: -7, CardsSeen: 200}
	c.Reset()
	assert.Equal(t, Count{}, c)

	c = Count{Running: 12, CardsSeen: 3}
	c.Reset()
	assert.Equal(t, Count{}, c)
}

func TestTrueCount(t *testing.T) {
	c := Count{Running: 6}
	assert.InDelta(t, 2.0, c.TrueCount(3*deck.CardsPerDeck), 1e-9)
	assert.InDelta(t, 12.0, c.TrueCount(10), 1e-9, "floors at half a deck")
}
