package combination

import (
	"cmp"
	"slices"

	"github.com/lox/fivecard/internal/deck"
)

// sortedDescending returns a copy of cards ordered by value, highest
// first. Cards of equal value keep their input order.
func sortedDescending(cards []deck.Card) []deck.Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b deck.Card) int {
		return cmp.Compare(b.Value(), a.Value())
	})
	return out
}

// sortedAscending is sortedDescending in reverse value order.
func sortedAscending(cards []deck.Card) []deck.Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b deck.Card) int {
		return cmp.Compare(a.Value(), b.Value())
	})
	return out
}

// findGroup returns the highest-ranked group of n cards sharing a rank.
//
// Cards are scanned highest first while a window holds up to n-1 of the
// previously seen cards, most recent first. A card completes a group only
// when the window is full and every card in it has the same rank; an
// unfilled slot never matches.
func findGroup(cards []deck.Card, n int) ([]deck.Card, bool) {
	if n < 1 {
		return nil, false
	}

	window := make([]deck.Card, 0, n-1)
	for _, card := range sortedDescending(cards) {
		if len(window) == n-1 && allRankEqual(card, window) {
			group := make([]deck.Card, 0, n)
			for i := len(window) - 1; i >= 0; i-- {
				group = append(group, window[i])
			}
			return append(group, card), true
		}

		if len(window) < n-1 {
			window = append(window, deck.Card{})
		}
		copy(window[1:], window[:len(window)-1])
		window[0] = card
	}
	return nil, false
}

func allRankEqual(card deck.Card, others []deck.Card) bool {
	for _, o := range others {
		if !card.IsRankEqual(o) {
			return false
		}
	}
	return true
}

// orderByPriority concatenates groups in the given order and appends
// every card not in any group, highest first. The result is the
// tie-break order consumed by Encode. cards is not modified.
func orderByPriority(cards []deck.Card, groups ...[]deck.Card) []deck.Card {
	ordered := make([]deck.Card, 0, len(cards))
	for _, group := range groups {
		ordered = append(ordered, group...)
	}

	used := len(ordered)
	for _, card := range sortedDescending(cards) {
		if !containsCard(ordered[:used], card) {
			ordered = append(ordered, card)
		}
	}
	return ordered
}

// withoutCards returns a copy of cards minus every card in remove.
func withoutCards(cards, remove []deck.Card) []deck.Card {
	out := make([]deck.Card, 0, len(cards))
	for _, card := range cards {
		if !containsCard(remove, card) {
			out = append(out, card)
		}
	}
	return out
}

func containsCard(cards []deck.Card, card deck.Card) bool {
	return slices.ContainsFunc(cards, card.Equals)
}
