package blackjack

import "fmt"

// Outcome is the state a round is left in after a move
type Outcome int

const (
	OutcomeGameContinues Outcome = iota
	OutcomePush
	OutcomeDealerWinsBlackjack
	OutcomeDealerWinsPlayerBust
	OutcomeDealerWinsHigherValue
	OutcomePlayerWinsBlackjack
	OutcomePlayerWinsDealerBust
	OutcomePlayerWinsHigherValue
)

var outcomeNames = map[Outcome]string{
	OutcomeGameContinues:         "GAME_CONTINUES",
	OutcomePush:                  "PUSH",
	OutcomeDealerWinsBlackjack:   "DEALER_WINS_BLACKJACK",
	OutcomeDealerWinsPlayerBust:  "DEALER_WINS_PLAYER_BUST",
	OutcomeDealerWinsHigherValue: "DEALER_WINS_HIGHER_VALUE",
	OutcomePlayerWinsBlackjack:   "PLAYER_WINS_BLACKJACK",
	OutcomePlayerWinsDealerBust:  "PLAYER_WINS_DEALER_BUST",
	OutcomePlayerWinsHigherValue: "PLAYER_WINS_HIGHER_VALUE",
}

// String returns the string representation of the outcome
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OUTCOME(%d)", int(o))
}

// IsTerminal returns true once the round is decided
func (o Outcome) IsTerminal() bool {
	return o != OutcomeGameContinues
}

// PlayerWins returns true if this outcome is a win for the player
func (o Outcome) PlayerWins() bool {
	switch o {
	case OutcomePlayerWinsBlackjack, OutcomePlayerWinsDealerBust, OutcomePlayerWinsHigherValue:
		return true
	default:
		return false
	}
}

// DealerWins returns true if this outcome is a win for the dealer
func (o Outcome) DealerWins() bool {
	switch o {
	case OutcomeDealerWinsBlackjack, OutcomeDealerWinsPlayerBust, OutcomeDealerWinsHigherValue:
		return true
	default:
		return false
	}
}

// MoveResult is what every transition returns. Game is the round state after
// the move; once Outcome is terminal it is final and must not be moved again.
type MoveResult struct {
	Outcome Outcome
	Game    *Game
}

// Payout returns the player's net result for the bet: positive when the
// player wins, negative when the dealer wins and zero for a push or a round
// still in play. Blackjack wins pay the bet times the table bonus.
func (r MoveResult) Payout() float64 {
	if r.Game == nil {
		return 0
	}

	bet := r.Game.PlayerBet
	switch {
	case r.Outcome == OutcomePlayerWinsBlackjack:
		return bet * r.Game.Rules.PlayerBonusOnBlackjack
	case r.Outcome.PlayerWins():
		return bet
	case r.Outcome.DealerWins():
		return -bet
	default:
		return 0
	}
}
