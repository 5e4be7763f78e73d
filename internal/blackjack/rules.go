package blackjack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/blackjacksim/internal/deck"
)

// Surrender is the table's surrender policy
type Surrender int

const (
	SurrenderNone Surrender = iota
	SurrenderEarly
	SurrenderLate
)

// String returns the config spelling of the policy
func (s Surrender) String() string {
	switch s {
	case SurrenderNone:
		return "none"
	case SurrenderEarly:
		return "early"
	case SurrenderLate:
		return "late"
	default:
		return fmt.Sprintf("Surrender(%d)", int(s))
	}
}

// ParseSurrender parses "none", "early" or "late". The empty string means none.
func ParseSurrender(s string) (Surrender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SurrenderNone, nil
	case "early":
		return SurrenderEarly, nil
	case "late":
		return SurrenderLate, nil
	default:
		return SurrenderNone, fmt.Errorf("unknown surrender policy %q", s)
	}
}

// MinPenetration is the smallest reshuffle threshold accepted. It does not
// bound the size of a round: a long enough round can still empty the shoe,
// which ends the session with deck.ErrShoeEmpty.
const MinPenetration = 20

// Rules is the immutable per-session table configuration
type Rules struct {
	Decks            int       // decks in the shoe
	Penetration      int       // reshuffle once this many cards or fewer remain
	HitSoft17        bool      // dealer hits soft 17
	DoubleAfterSplit bool      // doubling allowed on split hands
	Surrender        Surrender // surrender policy
	ResplitAces      bool      // aces may be split again
	HitSplitAces     bool      // split aces may take more cards
	DoubleSplitAces  bool      // split aces may be doubled
}

// DefaultRules returns a common six-deck, stand-on-soft-17 game
func DefaultRules() Rules {
	return Rules{
		Decks:            6,
		Penetration:      47,
		HitSoft17:        false,
		DoubleAfterSplit: true,
		Surrender:        SurrenderNone,
	}
}

var (
	ErrInvalidDecks       = errors.New("decks must be positive")
	ErrInvalidPenetration = errors.New("penetration out of range")
)

// Validate checks the rules describe a playable shoe
func (r Rules) Validate() error {
	if r.Decks <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDecks, r.Decks)
	}
	if r.Penetration < MinPenetration || r.Penetration >= r.Decks*deck.CardsPerDeck {
		return fmt.Errorf("%w: %d not in [%d, %d)", ErrInvalidPenetration,
			r.Penetration, MinPenetration, r.Decks*deck.CardsPerDeck)
	}
	switch r.Surrender {
	case SurrenderNone, SurrenderEarly, SurrenderLate:
	default:
		return fmt.Errorf("unknown surrender policy %d", int(r.Surrender))
	}
	return nil
}
