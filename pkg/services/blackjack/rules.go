package blackjack

import (
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	BlackjackValue = 21 // Best possible hand value
	DealerStandsOn = 17 // Dealer stops drawing here unless the soft 17 rule applies
	DefaultBonus   = 1.5
)

const (
	softAceValue    = 11
	hardAceValue    = 1
	naturalHandSize = 2
)

// Rules holds the house rules for a round
type Rules struct {
	// PlayerBonusOnBlackjack multiplies the bet when the player wins with a
	// blackjack, i.e. 1.5 for a 3:2 payout
	PlayerBonusOnBlackjack float64
	// DealerHitsOnSoft17 makes the dealer draw on a 17 that holds an ace
	DealerHitsOnSoft17 bool
}

// DefaultRules returns a 3:2 table where the dealer stands on all 17s
func DefaultRules() Rules {
	return Rules{
		PlayerBonusOnBlackjack: DefaultBonus,
		DealerHitsOnSoft17:     false,
	}
}

// Validate checks the rules are usable
func (r Rules) Validate() error {
	if r.PlayerBonusOnBlackjack <= 0 {
		return types.NewGameErrorf(types.ErrInvalidConfig, "blackjack bonus must be positive, got %v", r.PlayerBonusOnBlackjack)
	}
	return nil
}

// CardValue returns the base value of a card. Aces count 0 here; ValueOfHand
// decides whether each one is worth 1 or 11.
func CardValue(card entities.Card) int {
	switch card.Rank {
	case entities.Two:
		return 2
	case entities.Three:
		return 3
	case entities.Four:
		return 4
	case entities.Five:
		return 5
	case entities.Six:
		return 6
	case entities.Seven:
		return 7
	case entities.Eight:
		return 8
	case entities.Nine:
		return 9
	case entities.Ten, entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		return 0
	}
}

// ValueOfHand returns the blackjack value of a hand
func ValueOfHand(hand entities.Hand) int {
	value := 0
	aces := 0

	// First count non-aces
	for _, card := range hand {
		if card.Rank == entities.Ace {
			aces++
			continue
		}
		value += CardValue(card)
	}

	// Then each ace, in order, is soft only if it keeps the hand at 21 or under
	for i := 0; i < aces; i++ {
		if value+softAceValue <= BlackjackValue {
			value += softAceValue
		} else {
			value += hardAceValue
		}
	}

	return value
}

// IsBlackjack reports a natural: exactly two cards worth 21
func IsBlackjack(hand entities.Hand) bool {
	return len(hand) == naturalHandSize && ValueOfHand(hand) == BlackjackValue
}

// IsBust checks if a hand exceeds 21
func IsBust(hand entities.Hand) bool {
	return ValueOfHand(hand) > BlackjackValue
}

// DealerShouldMove reports whether the dealer draws another card. At exactly
// 17 the dealer draws only under the soft 17 rule and only when the hand holds
// an ace; whether that ace is currently counted as 11 is not checked.
func DealerShouldMove(hand entities.Hand, hitsOnSoft17 bool) bool {
	value := ValueOfHand(hand)

	if value > DealerStandsOn {
		return false
	}

	if value < DealerStandsOn {
		return true
	}

	return hitsOnSoft17 && hand.Contains(entities.Ace)
}
