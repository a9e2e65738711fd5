package deck

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseCards parses a string of card notation into a slice of cards.
// Format: "AsKsQsJsTs" where each card is [Rank][Suit]; spaces and commas
// between cards are ignored.
// Ranks: A, K, Q, J, T (or 10), 9, 8, 7, 6, 5, 4, 3, 2
// Suits: s (spades), h (hearts), d (diamonds), c (clubs), or ♠ ♥ ♦ ♣
func ParseCards(s string) ([]Card, error) {
	runes := []rune(s)
	var cards []Card
	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) || runes[i] == ',' {
			i++
			continue
		}

		rank, width, err := parseRank(runes[i:])
		if err != nil {
			return nil, fmt.Errorf("invalid rank at position %d: %w", i, err)
		}
		i += width

		if i >= len(runes) {
			return nil, fmt.Errorf("incomplete card at position %d", i-width)
		}

		suit, err := parseSuit(runes[i])
		if err != nil {
			return nil, fmt.Errorf("invalid suit '%c' at position %d: %w", runes[i], i, err)
		}
		i++

		cards = append(cards, Card{Rank: rank, Suit: suit})
	}

	return cards, nil
}

// ParseCard parses exactly one card, e.g. "As" or "10♦".
func ParseCard(s string) (Card, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Card{}, err
	}
	if len(cards) != 1 {
		return Card{}, fmt.Errorf("expected one card in %q, got %d", s, len(cards))
	}
	return cards[0], nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards renders cards space separated using their symbol form.
func FormatCards(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}

func parseRank(r []rune) (Rank, int, error) {
	switch r[0] {
	case 'A', 'a':
		return Ace, 1, nil
	case 'K', 'k':
		return King, 1, nil
	case 'Q', 'q':
		return Queen, 1, nil
	case 'J', 'j':
		return Jack, 1, nil
	case 'T', 't':
		return Ten, 1, nil
	case '1':
		if len(r) > 1 && r[1] == '0' {
			return Ten, 2, nil
		}
	case '9':
		return Nine, 1, nil
	case '8':
		return Eight, 1, nil
	case '7':
		return Seven, 1, nil
	case '6':
		return Six, 1, nil
	case '5':
		return Five, 1, nil
	case '4':
		return Four, 1, nil
	case '3':
		return Three, 1, nil
	case '2':
		return Two, 1, nil
	}
	return 0, 0, fmt.Errorf("unknown rank '%c'", r[0])
}

func parseSuit(c rune) (Suit, error) {
	switch c {
	case 's', 'S', '♠':
		return Spades, nil
	case 'h', 'H', '♥':
		return Hearts, nil
	case 'd', 'D', '♦':
		return Diamonds, nil
	case 'c', 'C', '♣':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
