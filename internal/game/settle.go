package game

import "github.com/lox/blackjacksim/internal/blackjack"

// settle pays out every hand of the current round. Bets were taken from the
// bankroll when placed, so a loss moves nothing back.
func (g *Game) settle() {
	round := g.round
	if round.Surrendered {
		for i := range round.Hands {
			bet := round.Hands[i].Bet
			refund := bet / 2
			g.bankroll += refund
			g.stats.AmountLost += bet - refund
		}
		return
	}

	dealer := round.Dealer.Value()
	for i := range round.Hands {
		hand := &round.Hands[i]
		switch outcome(hand, dealer) {
		case Win:
			g.win(hand)
		case Push:
			g.stats.Pushes++
			g.bankroll += hand.Bet
		default:
			g.stats.Losses++
			g.stats.AmountLost += hand.Bet
		}
	}
}

func (g *Game) win(hand *blackjack.Hand) {
	bet := hand.Bet
	g.stats.Wins++
	if hand.IsBlackjack() {
		g.stats.Blackjacks++
		g.stats.AmountWon += bet + bet/2
		g.bankroll += 2*bet + bet/2
		return
	}
	g.stats.AmountWon += bet
	g.bankroll += 2 * bet
}

// Outcome is the result of one settled hand
type Outcome int

const (
	Loss Outcome = iota
	Push
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Push:
		return "push"
	default:
		return "loss"
	}
}

// outcome compares a hand with the dealer's final total
func outcome(hand *blackjack.Hand, dealer int) Outcome {
	if hand.IsBust() {
		return Loss
	}
	player := hand.Cards.Value()
	switch {
	case dealer <= 21 && dealer == player:
		return Push
	case dealer > 21 || player > dealer:
		return Win
	default:
		return Loss
	}
}
