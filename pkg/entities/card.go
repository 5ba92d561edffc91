package entities

// Suit represents a card suit
type Suit string

const (
	Clubs    Suit = "CLUBS"
	Diamonds Suit = "DIAMONDS"
	Hearts   Suit = "HEARTS"
	Spades   Suit = "SPADES"
)

var suitCodes = map[Suit]byte{
	Clubs:    'C',
	Diamonds: 'D',
	Hearts:   'H',
	Spades:   'S',
}

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// Suits returns all four suits in encoding order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	_, ok := suitCodes[s]
	return ok
}

// Code returns the single character used in the text encoding
func (s Suit) Code() byte {
	return suitCodes[s]
}

// Symbol returns the suit glyph for display
func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func suitFromCode(c byte) (Suit, bool) {
	switch c {
	case 'C':
		return Clubs, true
	case 'D':
		return Diamonds, true
	case 'H':
		return Hearts, true
	case 'S':
		return Spades, true
	default:
		return "", false
	}
}

// Rank represents a card rank. The value is the rank's text symbol; ten is "0"
// so every card encodes to exactly two characters.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "0"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Ranks returns all thirteen ranks, two through ace
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace:
		return true
	default:
		return false
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// ParseCard decodes a two character card code such as "2H" or "0S".
// It reports false for anything that is not exactly a rank symbol followed by
// a suit code. Matching is case-sensitive.
func ParseCard(text string) (Card, bool) {
	if len(text) != 2 {
		return Card{}, false
	}

	rank := Rank(text[:1])
	if !rank.Valid() {
		return Card{}, false
	}

	suit, ok := suitFromCode(text[1])
	if !ok {
		return Card{}, false
	}

	return Card{Rank: rank, Suit: suit}, true
}

// String returns the two character code of the card
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit.Code())
}

// Pretty returns a human friendly rendering, e.g. "10♥"
func (c Card) Pretty() string {
	rank := string(c.Rank)
	if c.Rank == Ten {
		rank = "10"
	}
	return rank + c.Suit.Symbol()
}
