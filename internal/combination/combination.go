// Package combination recognises poker hand categories in an unordered
// set of cards and encodes the best one as a single comparable strength.
//
// Detection is a fixed chain of ten detectors tried from Royal Flush down
// to High Card. Each successful detector returns the input cards reordered
// so that the cards defining the combination come first and the kickers
// follow in descending rank; that order is what Encode packs into the
// strength value.
package combination

import (
	"fmt"

	"github.com/lox/fivecard/internal/deck"
)

// Combination is a detected hand category and its cards in tie-break order.
type Combination struct {
	Tier  Tier
	Cards []deck.Card
}

// Strength encodes the combination. See Encode.
func (c Combination) Strength() Strength {
	return Encode(c.Tier, c.Cards)
}

// Type returns the readable name of the combination's tier.
func (c Combination) Type() string {
	return c.Tier.String()
}

// String returns e.g. "Two Pairs [K♣ K♦ 7♣ 7♦ 2♠]".
func (c Combination) String() string {
	return fmt.Sprintf("%s [%s]", c.Tier, deck.FormatCards(c.Cards))
}

// Best walks the detector chain and returns the first combination found.
// It fails only for an empty collection.
func Best(cards []deck.Card) (Combination, bool) {
	for _, d := range chain {
		if ordered, ok := d.Detect(cards); ok {
			return Combination{Tier: d.Tier, Cards: ordered}, true
		}
	}
	return Combination{}, false
}
