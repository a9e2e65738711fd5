package deck

import "fmt"

// Suit represents a card suit. Suits carry no ordering.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter notation for a suit (s, h, d, c).
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank represents a card rank. Its integer value is the rank index used
// for ordering, with the Ace high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// lowAceValue is the value an Ace takes as the bottom of a wheel (A-2-3-4-5).
const lowAceValue = 1

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card represents a playing card. Cards are values; copying a card never
// aliases another.
type Card struct {
	Suit Suit
	Rank Rank

	lowAce bool
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Notation returns the two-character ASCII form accepted by ParseCard (e.g., "As").
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Valid reports whether both the rank and the suit are set.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Value returns the rank index of the card for comparison.
// Aces are 14, or 1 once placed at the bottom of a wheel with LowAce.
func (c Card) Value() int {
	if c.lowAce {
		return lowAceValue
	}
	return int(c.Rank)
}

// LowAce returns a copy of an Ace that ranks as 1. Any other card is
// returned unchanged.
func (c Card) LowAce() Card {
	if c.Rank == Ace {
		c.lowAce = true
	}
	return c
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// GreaterThan compares by rank value only.
func (c Card) GreaterThan(other Card) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return c.Value() > other.Value()
}

// LessThan compares by rank value only.
func (c Card) LessThan(other Card) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return c.Value() < other.Value()
}

// Equals reports whether both cards have the same rank and suit.
func (c Card) Equals(other Card) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// IsRankEqual reports whether both cards have the same rank value.
func (c Card) IsRankEqual(other Card) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return c.Value() == other.Value()
}

// IsSuitEqual reports whether both cards share a suit.
func (c Card) IsSuitEqual(other Card) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	return c.Suit == other.Suit
}

// IsNextInRank reports whether c directly follows other in a straight.
// An Ace follows a Five so the wheel can be built without rewriting
// values up front.
func (c Card) IsNextInRank(other Card) bool {
	if !c.Valid() || !other.Valid() {
		return false
	}
	if c.Value() == other.Value()+1 {
		return true
	}
	return c.Rank == Ace && other.Rank == Five
}
