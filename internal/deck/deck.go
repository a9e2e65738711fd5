package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrNotEnoughCards is returned when a deal asks for more cards than remain.
var ErrNotEnoughCards = errors.New("deck: not enough cards")

// CardAdder accepts cards one at a time, e.g. a player's hand.
type CardAdder interface {
	AddCard(Card)
}

// Deck represents a deck of playing cards. The random source is injected
// so that shuffles are reproducible.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new standard 52-card deck in suit-then-rank order.
// The deck is not shuffled.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

func (d *Deck) fill() {
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates).
func (d *Deck) Shuffle() {
	if d.rng == nil {
		panic("deck: Shuffle called without a random source")
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// PopCard removes and returns the last card in the deck
func (d *Deck) PopCard() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Remove takes a specific card out of the deck. It reports whether the
// card was present.
func (d *Deck) Remove(card Card) bool {
	for i, c := range d.cards {
		if c.Equals(card) {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return true
		}
	}
	return false
}

// MoveCards pops n cards from the deck into dst.
func (d *Deck) MoveCards(dst CardAdder, n int) error {
	if n > len(d.cards) {
		return fmt.Errorf("move %d cards with %d remaining: %w", n, len(d.cards), ErrNotEnoughCards)
	}
	for range n {
		card, _ := d.PopCard()
		dst.AddCard(card)
	}
	return nil
}

// Cards returns a copy of the cards remaining in the deck, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0] // Clear the slice but keep capacity
	d.fill()
	d.Shuffle()
}
