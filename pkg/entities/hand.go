package entities

import (
	"strings"

	"github.com/fadedpez/blackjack/internal/types"
)

// Hand is an ordered set of cards, in the order they were dealt
type Hand []Card

// ParseHand decodes whitespace separated card codes, e.g. "AH 0S 5C"
func ParseHand(text string) (Hand, error) {
	fields := strings.Fields(text)
	hand := make(Hand, 0, len(fields))
	for i, field := range fields {
		card, ok := ParseCard(field)
		if !ok {
			return nil, types.NewGameErrorf(types.ErrInvalidCard, "card %d (%q) is not a valid card code", i+1, field)
		}
		hand = append(hand, card)
	}
	return hand, nil
}

// Contains reports whether any card in the hand has the given rank
func (h Hand) Contains(rank Rank) bool {
	for _, card := range h {
		if card.Rank == rank {
			return true
		}
	}
	return false
}

// String returns the card codes separated by spaces
func (h Hand) String() string {
	codes := make([]string, len(h))
	for i, card := range h {
		codes[i] = card.String()
	}
	return strings.Join(codes, " ")
}

// Pretty renders the hand with suit symbols
func (h Hand) Pretty() string {
	cards := make([]string, len(h))
	for i, card := range h {
		cards[i] = card.Pretty()
	}
	return strings.Join(cards, " ")
}
