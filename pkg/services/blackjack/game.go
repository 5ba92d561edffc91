package blackjack

import (
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
)

// Game is the state of one round between the player and the dealer
type Game struct {
	ID                string
	Rules             Rules
	Deck              entities.Deck
	PlayerHand        entities.Hand
	DealerHiddenCard  entities.Card
	DealerVisibleHand entities.Hand
	PlayerBet         float64

	// Outcome of the last move; anything but OutcomeGameContinues ends the round
	Outcome Outcome
}

// DealerHand returns the dealer's full hand, hidden card first
func (g *Game) DealerHand() entities.Hand {
	hand := make(entities.Hand, 0, len(g.DealerVisibleHand)+1)
	hand = append(hand, g.DealerHiddenCard)
	return append(hand, g.DealerVisibleHand...)
}

// PlayerValue returns the value of the player's hand
func (g *Game) PlayerValue() int {
	return ValueOfHand(g.PlayerHand)
}

// DealerValue returns the value of the dealer's full hand
func (g *Game) DealerValue() int {
	return ValueOfHand(g.DealerHand())
}

// draw pops the next card. A round started from a full deck cannot run out,
// so an empty deck here is a bug in the caller.
func (g *Game) draw() entities.Card {
	card, err := g.Deck.Draw()
	if err != nil {
		panic(types.WrapError(types.ErrEmptyDeck, "game "+g.ID+" ran out of cards", err))
	}
	return card
}

// Dealer runs rounds: it shuffles, deals and plays the house hand
type Dealer struct {
	rng    entities.RandomSource
	logger *logging.Logger
}

// NewDealer creates a dealer. A nil rng falls back to a time seeded source and
// a nil logger discards output.
func NewDealer(rng entities.RandomSource, logger *logging.Logger) *Dealer {
	if rng == nil {
		rng = entities.NewRandomSource(0)
	}
	if logger == nil {
		logger = logging.Discard
	}
	return &Dealer{
		rng:    rng,
		logger: logger,
	}
}

// StartGame shuffles a fresh deck, deals the opening hands and settles any
// natural blackjacks
func (d *Dealer) StartGame(rules Rules, bet float64) MoveResult {
	deck := entities.Shuffle(entities.NewDeck(), d.rng)
	return d.startWithDeck(rules, bet, deck)
}

// startWithDeck deals from the given deck in the order player, player,
// dealer hidden, dealer visible
func (d *Dealer) startWithDeck(rules Rules, bet float64, deck entities.Deck) MoveResult {
	game := &Game{
		ID:    uuid.NewString(),
		Rules: rules,
		Deck:  deck,
	}

	first := game.draw()
	second := game.draw()
	game.PlayerHand = entities.Hand{first, second}
	game.DealerHiddenCard = game.draw()
	game.DealerVisibleHand = entities.Hand{game.draw()}
	game.PlayerBet = bet

	d.logger.Debug("game %s: dealt player [%s] (%d), dealer shows %s, bet %.2f",
		game.ID, game.PlayerHand, game.PlayerValue(), game.DealerVisibleHand, bet)

	playerHasBlackjack := IsBlackjack(game.PlayerHand)
	dealerHasBlackjack := IsBlackjack(game.DealerHand())

	switch {
	case playerHasBlackjack && dealerHasBlackjack:
		return d.finish(game, OutcomePush)
	case playerHasBlackjack:
		return d.finish(game, OutcomePlayerWinsBlackjack)
	case dealerHasBlackjack:
		return d.finish(game, OutcomeDealerWinsBlackjack)
	}

	return d.finish(game, OutcomeGameContinues)
}

// MakePlayerMove applies the player's move. Passing a move other than Hit or
// Stay, or moving a round that is already over, panics with a *types.GameError.
func (d *Dealer) MakePlayerMove(game *Game, move PlayerMove) MoveResult {
	if game.Outcome.IsTerminal() {
		panic(types.NewGameErrorf(types.ErrRoundOver, "game %s already ended with %s", game.ID, game.Outcome))
	}

	switch move {
	case Hit:
		return d.hit(game)
	case Stay:
		return d.stay(game)
	default:
		panic(types.NewGameErrorf(types.ErrInvalidMove, "player move %s not accounted for", move))
	}
}

func (d *Dealer) hit(game *Game) MoveResult {
	card := game.draw()
	game.PlayerHand = append(game.PlayerHand, card)

	value := game.PlayerValue()
	d.logger.Debug("game %s: player hits %s, now %d", game.ID, card, value)

	if IsBust(game.PlayerHand) {
		return d.finish(game, OutcomeDealerWinsPlayerBust)
	}

	// Reaching 21 on a hit is paid like a natural
	if value == BlackjackValue {
		return d.finish(game, OutcomePlayerWinsBlackjack)
	}

	return d.finish(game, OutcomeGameContinues)
}

func (d *Dealer) stay(game *Game) MoveResult {
	d.logger.Debug("game %s: player stays on %d, dealer reveals %s", game.ID, game.PlayerValue(), game.DealerHiddenCard)

	// The dealer always takes at least one card after the player stays
	for {
		card := game.draw()
		game.DealerVisibleHand = append(game.DealerVisibleHand, card)
		d.logger.Debug("game %s: dealer draws %s, now %d", game.ID, card, game.DealerValue())

		if !DealerShouldMove(game.DealerHand(), game.Rules.DealerHitsOnSoft17) {
			break
		}
	}

	dealerValue := game.DealerValue()
	playerValue := game.PlayerValue()

	switch {
	case dealerValue > BlackjackValue:
		return d.finish(game, OutcomePlayerWinsDealerBust)
	case dealerValue == BlackjackValue:
		return d.finish(game, OutcomeDealerWinsBlackjack)
	case dealerValue == playerValue:
		return d.finish(game, OutcomePush)
	case dealerValue > playerValue:
		return d.finish(game, OutcomeDealerWinsHigherValue)
	default:
		return d.finish(game, OutcomePlayerWinsHigherValue)
	}
}

func (d *Dealer) finish(game *Game, outcome Outcome) MoveResult {
	game.Outcome = outcome
	result := MoveResult{Outcome: outcome, Game: game}

	if outcome.IsTerminal() {
		d.logger.Info("game %s: %s (player %d [%s], dealer %d [%s]), payout %.2f",
			game.ID, outcome, game.PlayerValue(), game.PlayerHand,
			game.DealerValue(), game.DealerHand(), result.Payout())
	}

	return result
}
