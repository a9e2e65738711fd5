package combination

import (
	"github.com/lox/fivecard/internal/deck"
)

const (
	// straightLength is the number of consecutive ranks that make a straight.
	straightLength = 5
	// minFlushSize is the fewest cards that can form a flush.
	minFlushSize = 5
)

// DetectFunc looks for one kind of combination in cards. On success it
// returns every input card in tie-break order. It never modifies cards.
type DetectFunc func(cards []deck.Card) ([]deck.Card, bool)

// Detector pairs a tier with the function that recognises it.
type Detector struct {
	Tier   Tier
	Detect DetectFunc
}

// chain is tried top to bottom; the first match is the hand's combination.
var chain = [...]Detector{
	{RoyalFlush, findRoyalFlush},
	{StraightFlush, findStraightFlush},
	{Quads, findQuads},
	{FullHouse, findFullHouse},
	{Flush, findFlush},
	{Straight, findStraight},
	{Set, findSet},
	{TwoPairs, findTwoPairs},
	{Pair, findPair},
	{HighCard, findHighCard},
}

// Detectors returns the detector chain, strongest tier first.
func Detectors() []Detector {
	out := make([]Detector, len(chain))
	copy(out, chain[:])
	return out
}

// Detect runs the single detector for tier.
func Detect(tier Tier, cards []deck.Card) (Combination, bool) {
	for _, d := range chain {
		if d.Tier != tier {
			continue
		}
		ordered, ok := d.Detect(cards)
		if !ok {
			return Combination{}, false
		}
		return Combination{Tier: tier, Cards: ordered}, true
	}
	return Combination{}, false
}

func findRoyalFlush(cards []deck.Card) ([]deck.Card, bool) {
	ordered, ok := findStraightFlush(cards)
	if !ok {
		return nil, false
	}
	// The wheel sorts as A-5-4-3-2, so a King in second place means the
	// straight runs to the Ace.
	if sortedDescending(cards)[1].Rank != deck.King {
		return nil, false
	}
	return ordered, true
}

// findStraightFlush keeps the straight's ordering so a five-high straight
// flush ranks below a six-high one.
func findStraightFlush(cards []deck.Card) ([]deck.Card, bool) {
	if _, ok := findFlush(cards); !ok {
		return nil, false
	}
	return findStraight(cards)
}

func findQuads(cards []deck.Card) ([]deck.Card, bool) {
	return findSingleGroup(cards, 4)
}

func findFullHouse(cards []deck.Card) ([]deck.Card, bool) {
	trips, ok := findGroup(cards, 3)
	if !ok {
		return nil, false
	}
	pair, ok := findGroup(withoutCards(cards, trips), 2)
	if !ok {
		return nil, false
	}
	return orderByPriority(cards, trips, pair), true
}

// findFlush requires at least five cards, all of one suit.
func findFlush(cards []deck.Card) ([]deck.Card, bool) {
	if len(cards) < minFlushSize {
		return nil, false
	}
	for _, card := range cards[1:] {
		if !card.IsSuitEqual(cards[0]) {
			return nil, false
		}
	}
	return orderByPriority(cards), true
}

// findStraight scans upward for five cards in consecutive ranks. An Ace
// directly above a Five closes the wheel and is then moved to the bottom
// as a low Ace.
func findStraight(cards []deck.Card) ([]deck.Card, bool) {
	run := make([]deck.Card, 0, straightLength)
	for _, card := range sortedAscending(cards) {
		if len(run) == straightLength {
			break
		}
		if len(run) == 0 || card.IsNextInRank(run[len(run)-1]) {
			run = append(run, card)
		} else {
			run = append(run[:0], card)
		}
	}
	if len(run) != straightLength {
		return nil, false
	}

	top := len(run) - 1
	if run[top].Rank == deck.Ace && run[top-1].Rank == deck.Five {
		low := run[top].LowAce()
		copy(run[1:], run[:top])
		run[0] = low
	}

	descending := make([]deck.Card, len(run))
	for i, card := range run {
		descending[len(run)-1-i] = card
	}
	return orderByPriority(cards, descending), true
}

func findSet(cards []deck.Card) ([]deck.Card, bool) {
	return findSingleGroup(cards, 3)
}

// findTwoPairs orders against the full collection so the kicker is
// placed after both pairs.
func findTwoPairs(cards []deck.Card) ([]deck.Card, bool) {
	high, ok := findGroup(cards, 2)
	if !ok {
		return nil, false
	}
	low, ok := findGroup(withoutCards(cards, high), 2)
	if !ok {
		return nil, false
	}
	return orderByPriority(cards, high, low), true
}

func findPair(cards []deck.Card) ([]deck.Card, bool) {
	return findSingleGroup(cards, 2)
}

func findHighCard(cards []deck.Card) ([]deck.Card, bool) {
	if len(cards) == 0 {
		return nil, false
	}
	return orderByPriority(cards), true
}

func findSingleGroup(cards []deck.Card, n int) ([]deck.Card, bool) {
	group, ok := findGroup(cards, n)
	if !ok {
		return nil, false
	}
	return orderByPriority(cards, group), true
}
