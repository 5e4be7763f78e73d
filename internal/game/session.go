// Package game plays blackjack sessions: repeated rounds against one shoe
// with a fixed strategy table, tracking bankroll, outcomes and the count.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/blackjacksim/internal/blackjack"
	"github.com/lox/blackjacksim/internal/deck"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/strategy"
)

// FloorMultiple is the bankroll floor in standard bets. A round cannot start
// once the bankroll is at or below it.
const FloorMultiple = 8

var (
	ErrInvalidBet      = errors.New("bet must be positive and even")
	ErrInvalidBankroll = errors.New("bankroll must be positive")
	ErrInvalidRounds   = errors.New("rounds must not be negative")
)

// Options configures a session
type Options struct {
	Rules    blackjack.Rules
	Bankroll int64
	Bet      int64
	Rounds   int

	// Table is the strategy chart to play. It is selected from Rules when nil.
	Table *strategy.Table

	// Rand shuffles every shoe of the session. Seeded from the clock when nil.
	Rand *rand.Rand

	// Shoe replaces the first shoe, mainly to stack cards in tests.
	Shoe *deck.Shoe

	// ID names the session in logs and results. A UUID when empty.
	ID string

	Logger *log.Logger
}

// Stats are the cumulative counters of a session
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Surrenders int
	Blackjacks int
	Hits       int
	Stands     int
	Doubles    int
	Splits     int
	AmountWon  int64
	AmountLost int64
}

// Game is a single session. It is not safe for concurrent use; parallel
// simulations run one Game per goroutine.
type Game struct {
	id     string
	rules  blackjack.Rules
	table  *strategy.Table
	rng    *rand.Rand
	logger *log.Logger
	debug  bool

	shoe  *deck.Shoe
	round *blackjack.Round
	count blackjack.Count

	stats            Stats
	bet              int64
	bankroll         int64
	startingBankroll int64
	roundsLeft       int
	stoppedEarly     bool
	netSum           float64
	netSumSquares    float64
}

// New validates opts and prepares a session with a freshly shuffled shoe
func New(opts Options) (*Game, error) {
	if err := opts.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if opts.Bet <= 0 || opts.Bet%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBet, opts.Bet)
	}
	if opts.Bankroll <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBankroll, opts.Bankroll)
	}
	if opts.Rounds < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, opts.Rounds)
	}

	table := opts.Table
	if table == nil {
		var err error
		if table, err = strategy.ForRules(opts.Rules); err != nil {
			return nil, err
		}
	}

	rng := opts.Rand
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}

	id := opts.ID
	if id == "" {
		id = uuid.Must(uuid.NewV7()).String()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", id)

	shoe := opts.Shoe
	if shoe == nil {
		shoe = deck.NewShoe(opts.Rules.Decks, rng)
	}

	return &Game{
		id:               id,
		rules:            opts.Rules,
		table:            table,
		rng:              rng,
		logger:           logger,
		debug:            logger.GetLevel() <= log.DebugLevel,
		shoe:             shoe,
		bet:              opts.Bet,
		bankroll:         opts.Bankroll,
		startingBankroll: opts.Bankroll,
		roundsLeft:       opts.Rounds,
	}, nil
}

// ID returns the session identifier
func (g *Game) ID() string { return g.id }

// Bankroll returns the current bankroll
func (g *Game) Bankroll() int64 { return g.bankroll }

// Count returns the current running count
func (g *Game) Count() blackjack.Count { return g.count }

// Stats returns the counters so far
func (g *Game) Stats() Stats { return g.stats }

// RoundsLeft returns how many rounds remain to be played
func (g *Game) RoundsLeft() int { return g.roundsLeft }

// CurrentRound returns the most recent round, or nil before the first
func (g *Game) CurrentRound() *blackjack.Round { return g.round }

// CanStartRound reports whether the bankroll is above the floor
func (g *Game) CanStartRound() bool {
	return g.bankroll > FloorMultiple*g.bet
}

// Play runs rounds until none are left or the bankroll reaches the floor.
// Dealing from an empty shoe aborts the session with an error wrapping
// deck.ErrShoeEmpty.
func (g *Game) Play() (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok || !errors.Is(perr, deck.ErrShoeEmpty) {
				panic(r)
			}
			err = fmt.Errorf("session %s round %d: %w", g.id, g.stats.Rounds+1, perr)
		}
	}()

	g.logger.Debug("Starting session", "rounds", g.roundsLeft, "bankroll", g.bankroll, "bet", g.bet)

	for g.roundsLeft > 0 {
		if !g.CanStartRound() {
			g.stoppedEarly = true
			g.logger.Info("Bankroll floor reached", "bankroll", g.bankroll, "roundsLeft", g.roundsLeft)
			break
		}
		if err := g.PlayRound(); err != nil {
			return g.Result(), err
		}
		g.roundsLeft--
	}

	return g.Result(), nil
}

// PlayRound plays one full round: deal, player hands, dealer, settlement and
// a reshuffle when the shoe has reached the penetration threshold.
func (g *Game) PlayRound() error {
	before := g.bankroll

	g.bankroll -= g.bet
	round, delta := blackjack.NewRound(g.rules, g.shoe, g.bet)
	g.round = round
	g.count.Add(delta, 4)

	if err := g.playHands(); err != nil {
		return fmt.Errorf("round %d: %w", g.stats.Rounds+1, err)
	}

	delta, drawn := round.PlayDealer()
	g.count.Add(delta, drawn)

	g.settle()
	g.stats.Rounds++

	net := float64(g.bankroll - before)
	g.netSum += net
	g.netSumSquares += net * net

	if g.debug {
		g.logger.Debug("Round settled",
			"round", g.stats.Rounds,
			"dealer", round.Dealer,
			"hands", len(round.Hands),
			"net", g.bankroll-before,
			"bankroll", g.bankroll,
			"runningCount", g.count.Running,
			"trueCount", fmt.Sprintf("%.2f", g.count.TrueCount(g.shoe.CardsLeft())))
	}

	if g.shoe.CardsLeft() <= g.rules.Penetration {
		g.Reshuffle()
	}
	return nil
}

// playHands acts on every player hand in order. Splits insert the new hand
// after the current one and the current hand is asked again.
func (g *Game) playHands() error {
	round := g.round
	for i := 0; i < len(round.Hands); {
		if round.Hands[i].IsBust() {
			i++
			continue
		}

		decision, err := g.table.Decide(round, i)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i, err)
		}
		if g.debug {
			g.logger.Debug("Decision",
				"round", g.stats.Rounds+1,
				"hand", i,
				"cards", round.Hands[i].Cards,
				"up", round.UpCard(),
				"chart", strategy.ChartFor(round, i),
				"decision", decision)
		}

		switch decision {
		case strategy.Hit:
			g.stats.Hits++
			g.count.Add(round.Hit(i), 1)
		case strategy.Stand:
			g.stats.Stands++
			i++
		case strategy.Double:
			g.stats.Doubles++
			g.bankroll -= round.Hands[i].Bet
			g.count.Add(round.Double(i), 1)
			i++
		case strategy.Split:
			g.stats.Splits++
			g.bankroll -= round.Hands[i].Bet
			g.count.Add(round.Split(i), 2)
		case strategy.Surrender:
			g.stats.Surrenders++
			round.Surrender()
			i++
		default:
			return fmt.Errorf("hand %d: unexpected decision %s", i, decision)
		}
	}
	return nil
}

// Reshuffle replaces the shoe and zeroes the count
func (g *Game) Reshuffle() {
	g.shoe = deck.NewShoe(g.rules.Decks, g.rng)
	g.count.Reset()
	if g.debug {
		g.logger.Debug("Reshuffled shoe", "round", g.stats.Rounds)
	}
}
