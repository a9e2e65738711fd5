package combination

import (
	"fmt"

	"github.com/lox/fivecard/internal/deck"
)

// Strength is a totally ordered hand value; larger is stronger.
//
// It is tier*10^12 plus the kicker weight, which packs the values of the
// first five ordered cards as base-100 digits with the first card most
// significant. Card values never exceed 14, so each digit stays in its
// slot and the kicker weight stays below 10^10.
type Strength uint64

const (
	tierMultiplier Strength = 1_000_000_000_000
	kickerBase     Strength = 100
	kickerSlots             = 5
)

// Encode computes the strength of cards already in tie-break order.
// Only the first five cards contribute.
func Encode(tier Tier, cards []deck.Card) Strength {
	return Strength(tier)*tierMultiplier + kickerWeight(cards)
}

func kickerWeight(cards []deck.Card) Strength {
	var weight Strength
	place := kickerBase * kickerBase * kickerBase * kickerBase
	for i := 0; i < len(cards) && i < kickerSlots; i++ {
		weight += Strength(cards[i].Value()) * place
		place /= kickerBase
	}
	return weight
}

// Tier returns the tier encoded in s.
func (s Strength) Tier() Tier {
	return Tier(s / tierMultiplier)
}

// Kickers returns the five base-100 digits of the kicker weight, most
// significant first. Unused slots are zero.
func (s Strength) Kickers() [kickerSlots]int {
	var out [kickerSlots]int
	weight := s % tierMultiplier
	for i := kickerSlots - 1; i >= 0; i-- {
		out[i] = int(weight % kickerBase)
		weight /= kickerBase
	}
	return out
}

// String returns the tier name followed by the raw value.
func (s Strength) String() string {
	return fmt.Sprintf("%s (%d)", s.Tier(), uint64(s))
}
