package evaluator

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fivecard/internal/combination"
	"github.com/lox/fivecard/internal/deck"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		cards    string // Card notation like "AsKsQsJsTs"
		expected combination.Tier
	}{
		{"Royal Flush", "TdJdQdKdAd", combination.RoyalFlush},
		{"Straight Flush", "9s8s7s6s5s", combination.StraightFlush},
		{"Four of a Kind", "AsAhAdAcKs", combination.Quads},
		{"Full House", "AsAhAdKsKh", combination.FullHouse},
		{"Flush", "AsKsQs8s6s", combination.Flush},
		{"Straight", "AsKhQdJcTs", combination.Straight},
		{"Three of a Kind", "AsAhAdKs9c", combination.Set},
		{"Two Pair", "AsAhKdKs9c", combination.TwoPairs},
		{"One Pair", "AsAhKdQs9c", combination.Pair},
		{"High Card", "AsKhQd9s7c", combination.HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := deck.MustParseCards(tt.cards)
			result, err := Evaluate(cards)
			if err != nil {
				t.Fatalf("Evaluate(%s) error: %v", tt.cards, err)
			}
			if result.Tier() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result.Tier())
			}
			if len(result.Cards()) != len(cards) {
				t.Errorf("Expected %d ordered cards, got %d", len(cards), len(result.Cards()))
			}
			if result.Strength != result.Combination.Strength() {
				t.Errorf("Strength %d does not match combination %d", result.Strength, result.Combination.Strength())
			}
		})
	}
}

func TestEvaluateEmptyHand(t *testing.T) {
	_, err := Evaluate(nil)
	if !errors.Is(err, ErrEmptyHand) {
		t.Fatalf("Expected ErrEmptyHand, got %v", err)
	}

	_, err = NewHand().TopCombination()
	if !errors.Is(err, ErrEmptyHand) {
		t.Fatalf("Expected ErrEmptyHand from empty Hand, got %v", err)
	}
}

func TestHandComparison(t *testing.T) {
	royalFlush, _ := Evaluate(deck.MustParseCards("AsKsQsJsTs"))
	fourOfAKind, _ := Evaluate(deck.MustParseCards("AsAhAdAcKs"))
	highCard, _ := Evaluate(deck.MustParseCards("AsKhQd9s7c"))

	if CompareResults(royalFlush, fourOfAKind) != AWins {
		t.Errorf("Royal flush should be stronger than four of a kind: %s vs %s", royalFlush, fourOfAKind)
	}
	if CompareResults(highCard, fourOfAKind) != BWins {
		t.Errorf("Four of a kind should be stronger than high card: %s vs %s", fourOfAKind, highCard)
	}
}

func TestKickerComparison(t *testing.T) {
	aceHigh, _ := Evaluate(deck.MustParseCards("AsKhQd9s7c"))
	kingHigh, _ := Evaluate(deck.MustParseCards("KsQhJd9s7c"))

	if aceHigh.Tier() != kingHigh.Tier() {
		t.Errorf("Both should be same hand type, got %s vs %s", aceHigh.Tier(), kingHigh.Tier())
	}
	if CompareResults(aceHigh, kingHigh) != AWins {
		t.Errorf("Ace high should be stronger than king high: %s vs %s", aceHigh, kingHigh)
	}
}

func TestPairComparison(t *testing.T) {
	acesPair, _ := Evaluate(deck.MustParseCards("AsAhKdQs9c"))
	ninesPair, _ := Evaluate(deck.MustParseCards("9s9hKdQsAc"))

	if acesPair.Tier() != combination.Pair || ninesPair.Tier() != combination.Pair {
		t.Errorf("Both should be one pair, got %s and %s", acesPair.Tier(), ninesPair.Tier())
	}
	if CompareResults(acesPair, ninesPair) != AWins {
		t.Errorf("Pair of Aces should be stronger than pair of Nines: %s vs %s", acesPair, ninesPair)
	}
}

func TestEvaluateLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	e := New(logger)

	_, err := e.Evaluate(deck.MustParseCards("KcKd7c7d2s"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hand evaluated")
	assert.Contains(t, buf.String(), "Two Pairs")
}

func TestEvaluateAll(t *testing.T) {
	e := New(log.NewWithOptions(io.Discard, log.Options{}))
	hands := [][]deck.Card{
		deck.MustParseCards("TdJdQdKdAd"),
		deck.MustParseCards("2d5c9hJsKh"),
		deck.MustParseCards("KcKd7c7d2s"),
		deck.MustParseCards("As2h3d4c5s"),
	}

	results, err := e.EvaluateAll(context.Background(), hands, 2)
	require.NoError(t, err)
	require.Len(t, results, len(hands))

	want := []combination.Tier{
		combination.RoyalFlush, combination.HighCard, combination.TwoPairs, combination.Straight,
	}
	for i, r := range results {
		assert.Equal(t, want[i], r.Tier(), "hand %d", i)
	}
}

func TestEvaluateAllReportsEmptyHand(t *testing.T) {
	hands := [][]deck.Card{deck.MustParseCards("KcKd7c7d2s"), nil}

	_, err := New(nil).EvaluateAll(context.Background(), hands, 0)
	require.ErrorIs(t, err, ErrEmptyHand)
	assert.Contains(t, err.Error(), "hand 1")
}

func TestEvaluateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).EvaluateAll(ctx, [][]deck.Card{deck.MustParseCards("KcKd7c7d2s")}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
