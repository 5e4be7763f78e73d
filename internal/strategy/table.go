package strategy

import (
	"errors"
	"fmt"

	"github.com/lox/blackjacksim/internal/blackjack"
)

// ErrTableNotImplemented is returned for rule sets without a strategy table
var ErrTableNotImplemented = errors.New("no basic strategy table for rules")

// Table is a basic strategy chart. Columns are the dealer up card 2..A.
//
// Hard rows cover totals 4..18, with 19 and above folded into the last row.
// Soft rows cover soft 12..20, with soft 21 folded into the last row.
// Pair rows are 2,2 through 9,9, then ten-value pairs, then aces.
type Table struct {
	Hard [15][10]Decision
	Soft [9][10]Decision
	Pair [10][10]Decision
}

// ForRules selects the chart for the given rules. The returned table is a
// private copy owned by the caller; selection happens once per session.
func ForRules(rules blackjack.Rules) (*Table, error) {
	multiDeck := rules.Decks >= 4 && rules.Decks <= 8
	switch {
	case !rules.HitSoft17 && multiDeck:
		t := fourToEightDeckS17
		return &t, nil
	case rules.Decks == 1, rules.Decks == 2, multiDeck:
		return nil, fmt.Errorf("%w: %d decks, hit soft 17 %t",
			ErrTableNotImplemented, rules.Decks, rules.HitSoft17)
	default:
		return nil, fmt.Errorf("%w: unsupported shoe of %d decks", ErrTableNotImplemented, rules.Decks)
	}
}

// Four to eight decks, dealer stands on soft 17.
var fourToEightDeckS17 = Table{
	Hard: [15][10]Decision{
		//  2      3      4      5      6      7      8      9     10      A
		{Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit},                                            // 4
		{Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit},                                            // 5
		{Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit},                                            // 6
		{Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit},                                            // 7
		{Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit, Hit},                                            // 8
		{Hit, Double, Double, Double, Double, Hit, Hit, Hit, Hit, Hit},                                // 9
		{Double, Double, Double, Double, Double, Double, Double, Double, Hit, Hit},                    // 10
		{Double, Double, Double, Double, Double, Double, Double, Double, Double, Double},              // 11
		{Hit, Hit, Stand, Stand, Stand, Hit, Hit, Hit, Hit, Hit},                                      // 12
		{Stand, Stand, Stand, Stand, Stand, Hit, Hit, Hit, Hit, Hit},                                  // 13
		{Stand, Stand, Stand, Stand, Stand, Hit, Hit, Hit, Hit, Hit},                                  // 14
		{Stand, Stand, Stand, Stand, Stand, Hit, Hit, Hit, SurrenderOrHit, SurrenderOrHit},            // 15
		{Stand, Stand, Stand, Stand, Stand, Hit, Hit, SurrenderOrHit, SurrenderOrHit, SurrenderOrHit}, // 16
		{Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, SurrenderOrStand},             // 17
		{Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand},                        // 18+
	},
	Soft: [9][10]Decision{
		{Hit, Hit, Hit, Hit, Double, Hit, Hit, Hit, Hit, Hit},                                                    // A,A when it cannot split
		{Hit, Hit, Hit, Double, Double, Hit, Hit, Hit, Hit, Hit},                                                 // A,2
		{Hit, Hit, Hit, Double, Double, Hit, Hit, Hit, Hit, Hit},                                                 // A,3
		{Hit, Hit, Double, Double, Double, Hit, Hit, Hit, Hit, Hit},                                              // A,4
		{Hit, Hit, Double, Double, Double, Hit, Hit, Hit, Hit, Hit},                                              // A,5
		{Hit, Double, Double, Double, Double, Hit, Hit, Hit, Hit, Hit},                                           // A,6
		{DoubleOrStand, DoubleOrStand, DoubleOrStand, DoubleOrStand, DoubleOrStand, Stand, Stand, Hit, Hit, Hit}, // A,7
		{Stand, Stand, Stand, Stand, DoubleOrStand, Stand, Stand, Stand, Stand, Stand},                           // A,8
		{Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand},                                   // A,9+
	},
	Pair: [10][10]Decision{
		{SplitIfDASOrHit, SplitIfDASOrHit, Split, Split, Split, Split, Hit, Hit, Hit, Hit}, // 2,2
		{SplitIfDASOrHit, SplitIfDASOrHit, Split, Split, Split, Split, Hit, Hit, Hit, Hit}, // 3,3
		{Hit, Hit, Hit, SplitIfDASOrHit, SplitIfDASOrHit, Hit, Hit, Hit, Hit, Hit},         // 4,4
		{Double, Double, Double, Double, Double, Double, Double, Double, Hit, Hit},         // 5,5
		{SplitIfDASOrHit, Split, Split, Split, Split, Hit, Hit, Hit, Hit, Hit},             // 6,6
		{Split, Split, Split, Split, Split, Split, Hit, Hit, Hit, Hit},                     // 7,7
		{Split, Split, Split, Split, Split, Split, Split, Split, Split, SurrenderOrSplit},  // 8,8
		{Split, Split, Split, Split, Split, Split, Split, Split, Split, SurrenderOrSplit},  // 9,9
		{Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand, Stand},             // T,T
		{Split, Split, Split, Split, Split, Split, Split, Split, Split, Split},             // A,A
	},
}
