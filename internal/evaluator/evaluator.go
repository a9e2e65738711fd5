package evaluator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fivecard/internal/combination"
	"github.com/lox/fivecard/internal/deck"
)

// ErrEmptyHand is returned when a hand with no cards is evaluated.
var ErrEmptyHand = errors.New("evaluator: empty hand")

// Result is the best combination found in a hand and its strength.
type Result struct {
	Combination combination.Combination
	Strength    combination.Strength
}

// Tier returns the tier of the combination.
func (r Result) Tier() combination.Tier {
	return r.Combination.Tier
}

// Cards returns the hand's cards in tie-break order.
func (r Result) Cards() []deck.Card {
	return r.Combination.Cards
}

func (r Result) String() string {
	return r.Combination.String()
}

// Evaluator classifies hands. It holds no state besides its logger, so a
// single Evaluator may be shared between goroutines.
//
// The evaluator does not reject duplicate cards or collections of
// unusual size; it classifies exactly the cards it is given.
type Evaluator struct {
	logger *log.Logger
}

// New creates an evaluator. A nil logger discards output.
func New(logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Evaluator{logger: logger.WithPrefix("evaluator")}
}

var defaultEvaluator = New(nil)

// Evaluate classifies cards with a silent evaluator.
func Evaluate(cards []deck.Card) (Result, error) {
	return defaultEvaluator.Evaluate(cards)
}

// Evaluate tries each detector from the strongest tier down and returns
// the first match.
func (e *Evaluator) Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) == 0 {
		return Result{}, ErrEmptyHand
	}

	for _, d := range combination.Detectors() {
		ordered, ok := d.Detect(cards)
		if !ok {
			continue
		}
		combo := combination.Combination{Tier: d.Tier, Cards: ordered}
		result := Result{Combination: combo, Strength: combo.Strength()}
		e.logger.Debug("hand evaluated",
			"cards", deck.FormatCards(cards),
			"combination", d.Tier,
			"ordered", deck.FormatCards(ordered),
			"strength", uint64(result.Strength))
		return result, nil
	}

	// High Card accepts any non-empty hand.
	return Result{}, fmt.Errorf("no combination matched %s", deck.FormatCards(cards))
}

// EvaluateAll evaluates independent hands concurrently with at most
// workers goroutines (GOMAXPROCS when workers <= 0). Results are in input
// order. The first failure cancels the remaining work.
func (e *Evaluator) EvaluateAll(ctx context.Context, hands [][]deck.Card, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(hands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, hand := range hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.Evaluate(hand)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
