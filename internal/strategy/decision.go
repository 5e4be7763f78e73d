package strategy

import (
	"errors"
	"fmt"
)

// Decision is a strategy table entry. Hit, Stand, Double, Split and
// Surrender are concrete actions; the rest are conditional entries that
// Resolve turns into a concrete action for the current round.
type Decision int

const (
	Hit Decision = iota
	Stand
	Double
	Surrender
	Split
	DoubleOrStand    // double if allowed, otherwise stand
	SplitIfDASOrHit  // split if double after split is offered, otherwise hit
	SurrenderOrHit   // surrender if allowed, otherwise hit
	SurrenderOrStand // surrender if allowed, otherwise stand
	SurrenderOrSplit // surrender if allowed, otherwise split
)

var decisionNames = [...]string{
	Hit:              "hit",
	Stand:            "stand",
	Double:           "double",
	Surrender:        "surrender",
	Split:            "split",
	DoubleOrStand:    "double-or-stand",
	SplitIfDASOrHit:  "split-if-das-or-hit",
	SurrenderOrHit:   "surrender-or-hit",
	SurrenderOrStand: "surrender-or-stand",
	SurrenderOrSplit: "surrender-or-split",
}

func (d Decision) String() string {
	if d >= 0 && int(d) < len(decisionNames) {
		return decisionNames[d]
	}
	return fmt.Sprintf("Decision(%d)", int(d))
}

// ErrUnreachableDecision is returned when a table cell holds an
// unconditional Surrender. No populated table contains one.
var ErrUnreachableDecision = errors.New("unconditional surrender in strategy table")

// Legality is the subset of round state that resolution depends on
type Legality struct {
	CanHit           bool
	CanDouble        bool
	CanSurrender     bool
	DoubleAfterSplit bool
}

// Resolve turns a raw table entry into an action that is legal under l.
// It is a pure function so table data and rule policy can be tested apart.
func Resolve(raw Decision, l Legality) (Decision, error) {
	switch raw {
	case Hit:
		if l.CanHit {
			return Hit, nil
		}
		return Stand, nil
	case Stand:
		return Stand, nil
	case Double:
		if l.CanDouble {
			return Double, nil
		}
		return Resolve(Hit, l)
	case DoubleOrStand:
		if l.CanDouble {
			return Double, nil
		}
		return Stand, nil
	case Split:
		return Split, nil
	case SplitIfDASOrHit:
		if l.DoubleAfterSplit {
			return Split, nil
		}
		return Resolve(Hit, l)
	case SurrenderOrHit:
		if l.CanSurrender {
			return Surrender, nil
		}
		return Resolve(Hit, l)
	case SurrenderOrStand:
		if l.CanSurrender {
			return Surrender, nil
		}
		return Stand, nil
	case SurrenderOrSplit:
		if l.CanSurrender {
			return Surrender, nil
		}
		return Split, nil
	case Surrender:
		return Surrender, ErrUnreachableDecision
	default:
		return raw, fmt.Errorf("unknown decision %d", int(raw))
	}
}
