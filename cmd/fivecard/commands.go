package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/fivecard/internal/combination"
	"github.com/lox/fivecard/internal/deck"
	"github.com/lox/fivecard/internal/evaluator"
	"github.com/lox/fivecard/internal/randutil"
	"github.com/lox/fivecard/internal/record"
	"github.com/lox/fivecard/internal/showdown"
)

// EvalCmd classifies a single hand
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards to classify, e.g. As Kd Qh Js Tc"`
}

func (c *EvalCmd) Run(app *App) error {
	cards, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return fmt.Errorf("invalid hand: %w", err)
	}

	result, err := evaluator.New(app.Logger).Evaluate(cards)
	if err != nil {
		return err
	}
	return writeResults(app.Out, app.Styles, []string{"hand"}, []evaluator.Result{result})
}

// CompareCmd settles two hands against each other
type CompareCmd struct {
	A string `arg:"" help:"First hand, e.g. \"AsAd7c7h2s\""`
	B string `arg:"" help:"Second hand"`
}

func (c *CompareCmd) Run(ctx context.Context, app *App) error {
	a, err := deck.ParseCards(c.A)
	if err != nil {
		return fmt.Errorf("invalid hand A: %w", err)
	}
	b, err := deck.ParseCards(c.B)
	if err != nil {
		return fmt.Errorf("invalid hand B: %w", err)
	}

	results, err := evaluator.New(app.Logger).EvaluateAll(ctx, [][]deck.Card{a, b}, 2)
	if err != nil {
		return err
	}
	ra, rb := results[0], results[1]

	if err := writeResults(app.Out, app.Styles, []string{"A", "B"}, []evaluator.Result{ra, rb}); err != nil {
		return err
	}

	outcome := evaluator.CompareResults(ra, rb)
	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, app.Styles.Verdict(outcome.String(), outcome))
	fmt.Fprintln(app.Out, evaluator.Explain(ra, rb))
	return nil
}

// DealCmd shuffles a deck and plays one showdown
type DealCmd struct {
	Seed     int64 `help:"Random seed (0 uses config, then current time)"`
	HandSize int   `name:"hand-size" help:"Cards dealt to each player (0 uses config)"`
	Record   bool  `help:"Write the showdown to the record directory"`
}

func (c *DealCmd) Run(app *App) error {
	seed := c.Seed
	if seed == 0 {
		seed = app.Config.Seed
	}
	seed = randutil.Resolve(seed)

	handSize := c.HandSize
	if handSize == 0 {
		handSize = app.Config.HandSize
	}

	app.Logger.Debug("dealing showdown", "seed", seed, "hand_size", handSize)
	res, err := showdown.Play(randutil.New(seed), handSize)
	if err != nil {
		return err
	}

	if err := writeShowdown(app.Out, app.Styles, res); err != nil {
		return err
	}

	if !c.Record {
		return nil
	}
	path, err := record.WriteFile(app.Config.Output.RecordDir, record.FromShowdown(res, seed, time.Now()))
	if err != nil {
		return fmt.Errorf("record showdown: %w", err)
	}
	app.Logger.Info("showdown recorded", "path", path, "seed", seed)
	return nil
}

// SimulateCmd deals many showdowns and reports aggregate statistics
type SimulateCmd struct {
	Showdowns int   `help:"Number of showdowns to deal (0 uses config)"`
	Workers   int   `help:"Concurrent workers (0 uses config, then GOMAXPROCS)"`
	Seed      int64 `help:"Random seed (0 uses config, then current time)"`

	clock quartz.Clock
}

func (c *SimulateCmd) Run(ctx context.Context, app *App) error {
	showdowns := c.Showdowns
	if showdowns == 0 {
		showdowns = app.Config.Simulate.Showdowns
	}
	workers := c.Workers
	if workers == 0 {
		workers = app.Config.Simulate.Workers
	}
	seed := c.Seed
	if seed == 0 {
		seed = app.Config.Seed
	}
	seed = randutil.Resolve(seed)

	sim := showdown.New(showdown.Config{
		Showdowns: showdowns,
		HandSize:  app.Config.HandSize,
		Workers:   workers,
		Seed:      seed,
		Logger:    app.Logger,
		Clock:     c.clock,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	return writeStats(app, stats, seed)
}

func writeStats(app *App, stats *showdown.Stats, seed int64) error {
	s := app.Styles
	tw := newTable(app.Out)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		s.Header.Render("combination"),
		s.Header.Render("hands"),
		s.Header.Render("frequency"))
	for _, tier := range combination.Tiers {
		fmt.Fprintf(tw, "%s\t%d\t%s\n",
			s.Category.Render(tier.String()),
			stats.TierCounts[tier],
			s.Percent.Render(fmt.Sprintf("%.4f%%", 100*stats.Frequency(tier))))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(app.Out)
	fmt.Fprintf(app.Out, "%s %d showdowns (seed %d) in %s\n",
		s.Header.Render("Dealt"), stats.Showdowns, seed, stats.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(app.Out, "Player 1: %s  Draws: %s  Player 2: %s\n",
		s.Win.Render(fmt.Sprint(stats.Wins)),
		s.Tie.Render(fmt.Sprint(stats.Draws)),
		s.Win.Render(fmt.Sprint(stats.Losses)))
	return nil
}
