package evaluator

import (
	"fmt"
	"slices"

	"github.com/lox/fivecard/internal/combination"
	"github.com/lox/fivecard/internal/deck"
)

// Hand accumulates a player's cards in the order they are dealt.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding cards.
func NewHand(cards ...deck.Card) *Hand {
	return &Hand{cards: slices.Clone(cards)}
}

// AddCard adds a card to the hand.
func (h *Hand) AddCard(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in the hand.
func (h *Hand) Cards() []deck.Card {
	return slices.Clone(h.cards)
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// TopCombination evaluates the hand.
func (h *Hand) TopCombination() (Result, error) {
	return Evaluate(h.cards)
}

// String returns the hand's cards in dealt order
func (h *Hand) String() string {
	return deck.FormatCards(h.cards)
}

// Explain describes why a beats or ties b, e.g.
// "Pair [J♥ J♠ A♠ 9♦ 4♣] beats Pair [J♦ J♣ K♠ 9♥ 4♦] with higher kicker (A vs K)".
func Explain(a, b Result) string {
	switch CompareResults(a, b) {
	case Draw:
		return fmt.Sprintf("%s ties %s", a, b)
	case BWins:
		a, b = b, a
	}

	explanation := fmt.Sprintf("%s beats %s", a, b)
	if a.Tier() != b.Tier() {
		return explanation + fmt.Sprintf(" (%s beats %s)", a.Tier(), b.Tier())
	}

	winner, loser := a.Strength.Kickers(), b.Strength.Kickers()
	for i := range winner {
		if winner[i] == loser[i] {
			continue
		}
		return explanation + fmt.Sprintf(" with higher %s (%s vs %s)",
			kickerRole(a.Tier(), i), kickerLabel(winner[i]), kickerLabel(loser[i]))
	}
	return explanation
}

// kickerLabel names the rank held in one strength digit. A low Ace is 1;
// 0 means the hand had no card in that position.
func kickerLabel(v int) string {
	switch v {
	case 0:
		return "none"
	case 1:
		return deck.Ace.String()
	default:
		return deck.Rank(v).String()
	}
}

// kickerRole names the card at position i of an ordered combination.
func kickerRole(tier combination.Tier, i int) string {
	switch tier {
	case combination.Pair:
		if i < 2 {
			return "pair"
		}
	case combination.TwoPairs:
		if i < 2 {
			return "top pair"
		}
		if i < 4 {
			return "bottom pair"
		}
	case combination.Set:
		if i < 3 {
			return "trips"
		}
	case combination.Quads:
		if i < 4 {
			return "quads"
		}
	case combination.FullHouse:
		if i < 3 {
			return "trips"
		}
		return "pair"
	case combination.Straight, combination.StraightFlush, combination.RoyalFlush:
		return "straight"
	case combination.Flush:
		return "flush card"
	case combination.HighCard:
		return "card"
	}
	return "kicker"
}
