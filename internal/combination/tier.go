package combination

// Tier is the category of a poker hand. Higher tiers beat lower tiers
// regardless of kickers.
type Tier int

const (
	HighCard Tier = iota
	Pair
	TwoPairs
	Set
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
	RoyalFlush
)

// Tiers lists every tier from strongest to weakest, the order in which
// detectors are tried.
var Tiers = [...]Tier{
	RoyalFlush, StraightFlush, Quads, FullHouse, Flush,
	Straight, Set, TwoPairs, Pair, HighCard,
}

// String returns the readable name of the tier
func (t Tier) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case Set:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the ten tiers.
func (t Tier) Valid() bool {
	return t >= HighCard && t <= RoyalFlush
}
