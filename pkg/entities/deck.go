package entities

import (
	"math/rand"
	"time"

	"github.com/fadedpez/blackjack/internal/types"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// RandomSource supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a math/rand source seeded with seed, or with the
// current time when seed is zero
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Deck is a stack of cards; Draw takes from the end
type Deck []Card

// NewDeck creates a new deck of 52 cards, one of each rank and suit, rank-major
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, rank := range Ranks() {
		for _, suit := range Suits() {
			deck = append(deck, NewCard(rank, suit))
		}
	}
	return deck
}

// Shuffle returns a shuffled copy of deck using the Durstenfeld variant of
// Fisher-Yates. The input deck is left untouched.
func Shuffle(deck Deck, rng RandomSource) Deck {
	shuffled := make(Deck, len(deck))
	copy(shuffled, deck)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	n := len(*d)
	if n == 0 {
		return Card{}, types.NewGameError(types.ErrEmptyDeck, "no cards left in the deck")
	}
	card := (*d)[n-1]
	*d = (*d)[:n-1]
	return card, nil
}

// Len returns the number of cards left
func (d Deck) Len() int {
	return len(d)
}
