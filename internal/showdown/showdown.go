// Package showdown deals hands from a shuffled deck and settles who wins.
package showdown

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/fivecard/internal/deck"
	"github.com/lox/fivecard/internal/evaluator"
)

// DefaultHandSize is the number of cards dealt to each player.
const DefaultHandSize = 5

// ErrNoRandomSource is returned by Play when it is given a nil rng.
var ErrNoRandomSource = errors.New("showdown: nil random source")

// Player is one side of a showdown.
type Player struct {
	Name   string
	Hand   *evaluator.Hand
	Result evaluator.Result
}

// Result is a settled two-player showdown. Outcome is from the first
// player's point of view.
type Result struct {
	Players [2]Player
	Outcome evaluator.Outcome
}

// Winner returns the winning player, or nil on a draw.
func (r *Result) Winner() *Player {
	switch r.Outcome {
	case evaluator.AWins:
		return &r.Players[0]
	case evaluator.BWins:
		return &r.Players[1]
	default:
		return nil
	}
}

// Verdict returns e.g. "Player 1 won!" or "Draw".
func (r *Result) Verdict() string {
	if w := r.Winner(); w != nil {
		return w.Name + " won!"
	}
	return "Draw"
}

// Play shuffles a fresh deck with rng, deals handSize cards to each of two
// players (all of the first player's cards before the second's), and
// evaluates both hands.
func Play(rng *rand.Rand, handSize int) (*Result, error) {
	if rng == nil {
		return nil, ErrNoRandomSource
	}
	if handSize < 1 {
		return nil, fmt.Errorf("hand size must be positive, got %d", handSize)
	}

	d := deck.NewDeck(rng)
	d.Shuffle()

	res := &Result{}
	for i := range res.Players {
		p := &res.Players[i]
		p.Name = fmt.Sprintf("Player %d", i+1)
		p.Hand = evaluator.NewHand()
		if err := d.MoveCards(p.Hand, handSize); err != nil {
			return nil, fmt.Errorf("deal to %s: %w", p.Name, err)
		}
	}

	return settle(res)
}

// Settle evaluates two known hands.
func Settle(a, b []deck.Card) (*Result, error) {
	res := &Result{
		Players: [2]Player{
			{Name: "Player 1", Hand: evaluator.NewHand(a...)},
			{Name: "Player 2", Hand: evaluator.NewHand(b...)},
		},
	}
	return settle(res)
}

func settle(res *Result) (*Result, error) {
	for i := range res.Players {
		p := &res.Players[i]
		result, err := p.Hand.TopCombination()
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", p.Name, err)
		}
		p.Result = result
	}
	res.Outcome = evaluator.CompareResults(res.Players[0].Result, res.Players[1].Result)
	return res, nil
}
