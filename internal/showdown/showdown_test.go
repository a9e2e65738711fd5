package showdown

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fivecard/internal/combination"
	"github.com/lox/fivecard/internal/deck"
	"github.com/lox/fivecard/internal/evaluator"
	"github.com/lox/fivecard/internal/randutil"
)

func TestPlayDealsDistinctHands(t *testing.T) {
	res, err := Play(randutil.New(12345), DefaultHandSize)
	require.NoError(t, err)

	a := res.Players[0].Hand.Cards()
	b := res.Players[1].Hand.Cards()
	require.Len(t, a, 5)
	require.Len(t, b, 5)
	for _, c := range a {
		for _, o := range b {
			assert.False(t, c.Equals(o), "%v dealt to both players", c)
		}
	}

	assert.Equal(t, "Player 1", res.Players[0].Name)
	assert.Equal(t, "Player 2", res.Players[1].Name)
	assert.Equal(t, evaluator.CompareResults(res.Players[0].Result, res.Players[1].Result), res.Outcome)
}

func TestPlayIsReproducible(t *testing.T) {
	first, err := Play(randutil.New(99), DefaultHandSize)
	require.NoError(t, err)
	second, err := Play(randutil.New(99), DefaultHandSize)
	require.NoError(t, err)

	assert.Equal(t, first.Players[0].Hand.Cards(), second.Players[0].Hand.Cards())
	assert.Equal(t, first.Players[1].Hand.Cards(), second.Players[1].Hand.Cards())
	assert.Equal(t, first.Outcome, second.Outcome)
}

func TestPlayRejectsBadHandSize(t *testing.T) {
	_, err := Play(randutil.New(1), 0)
	require.Error(t, err)

	_, err = Play(randutil.New(1), 27)
	require.ErrorIs(t, err, deck.ErrNotEnoughCards)
}

func TestPlayRequiresRandomSource(t *testing.T) {
	_, err := Play(nil, DefaultHandSize)
	require.ErrorIs(t, err, ErrNoRandomSource)
}

func TestSettle(t *testing.T) {
	res, err := Settle(deck.MustParseCards("As2h3d4c5s"), deck.MustParseCards("2c3d4h5s6c"))
	require.NoError(t, err)
	assert.Equal(t, evaluator.BWins, res.Outcome)
	assert.Equal(t, "Player 2 won!", res.Verdict())
	assert.Same(t, &res.Players[1], res.Winner())

	res, err = Settle(deck.MustParseCards("KcKd7c7d2s"), deck.MustParseCards("KhKs7h7s2c"))
	require.NoError(t, err)
	assert.Equal(t, "Draw", res.Verdict())
	assert.Nil(t, res.Winner())

	_, err = Settle(nil, deck.MustParseCards("2c"))
	require.ErrorIs(t, err, evaluator.ErrEmptyHand)
}

func TestSimulatorIsDeterministic(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	run := func(workers int) *Stats {
		stats, err := New(Config{
			Showdowns: 500,
			Workers:   workers,
			Seed:      4242,
			Logger:    logger,
			Clock:     quartz.NewMock(t),
		}).Run(context.Background())
		require.NoError(t, err)
		return stats
	}

	one := run(1)
	four := run(4)
	assert.Equal(t, one.TierCounts, four.TierCounts)
	assert.Equal(t, one.Wins, four.Wins)
	assert.Equal(t, one.Draws, four.Draws)
	assert.Equal(t, one.Losses, four.Losses)
}

func TestSimulatorStats(t *testing.T) {
	clock := quartz.NewMock(t)
	stats, err := New(Config{Showdowns: 2000, Workers: 3, Seed: 7, Clock: clock}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2000, stats.Showdowns)
	assert.Equal(t, 2000, stats.Wins+stats.Draws+stats.Losses)

	var sum int
	for _, n := range stats.TierCounts {
		sum += n
	}
	assert.Equal(t, stats.Hands(), sum)

	// High card and a pair make up most random five-card hands.
	assert.Greater(t, stats.Frequency(combination.HighCard), 0.4)
	assert.Greater(t, stats.Frequency(combination.Pair), 0.3)
	assert.Zero(t, stats.Frequency(combination.Tier(99)))

	// The mock clock never advances on its own.
	assert.Zero(t, stats.Elapsed)
}

func TestSimulatorRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Showdowns: -1}).Run(context.Background())
	require.Error(t, err)

	_, err = New(Config{Showdowns: 1, HandSize: 27}).Run(context.Background())
	require.Error(t, err)
}

func TestSimulatorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Showdowns: 10, Clock: quartz.NewMock(t)}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSimulatorZeroShowdowns(t *testing.T) {
	stats, err := New(Config{Clock: quartz.NewMock(t)}).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Showdowns)
	assert.Zero(t, stats.Frequency(combination.HighCard))
}
