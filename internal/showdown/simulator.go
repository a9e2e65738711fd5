package showdown

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/fivecard/internal/combination"
	"github.com/lox/fivecard/internal/evaluator"
	"github.com/lox/fivecard/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Showdowns int
	HandSize  int
	Workers   int
	Seed      int64
	Logger    *log.Logger
	Clock     quartz.Clock
}

// Stats aggregates simulated showdowns. Every hand dealt is counted in
// TierCounts, so it sums to twice Showdowns.
type Stats struct {
	Showdowns  int
	TierCounts [len(combination.Tiers)]int
	Wins       int // first player
	Draws      int
	Losses     int
	Elapsed    time.Duration
}

// Hands returns the number of hands evaluated.
func (s *Stats) Hands() int {
	return 2 * s.Showdowns
}

// Frequency returns the share of evaluated hands that landed in tier.
func (s *Stats) Frequency(tier combination.Tier) float64 {
	if s.Showdowns == 0 || !tier.Valid() {
		return 0
	}
	return float64(s.TierCounts[tier]) / float64(s.Hands())
}

func (s *Stats) add(r *Result) {
	s.Showdowns++
	for _, p := range r.Players {
		s.TierCounts[p.Result.Tier()]++
	}
	switch r.Outcome {
	case evaluator.AWins:
		s.Wins++
	case evaluator.BWins:
		s.Losses++
	default:
		s.Draws++
	}
}

func (s *Stats) merge(o *Stats) {
	s.Showdowns += o.Showdowns
	for i, n := range o.TierCounts {
		s.TierCounts[i] += n
	}
	s.Wins += o.Wins
	s.Draws += o.Draws
	s.Losses += o.Losses
}

// Simulator deals independent showdowns in parallel. Showdown i always
// uses the i-th stream derived from the seed, so totals do not depend on
// the number of workers.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.HandSize == 0 {
		config.HandSize = DefaultHandSize
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns the aggregate statistics.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	cfg := s.config
	if cfg.Showdowns < 0 {
		return nil, fmt.Errorf("showdown count must not be negative, got %d", cfg.Showdowns)
	}
	// Two hands must fit in one deck.
	if cfg.HandSize < 1 || 2*cfg.HandSize > 52 {
		return nil, fmt.Errorf("hand size %d cannot be dealt to two players", cfg.HandSize)
	}

	start := cfg.Clock.Now()
	total := &Stats{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	chunk := (cfg.Showdowns + cfg.Workers - 1) / cfg.Workers
	for lo := 0; lo < cfg.Showdowns; lo += chunk {
		hi := min(lo+chunk, cfg.Showdowns)
		g.Go(func() error {
			local := &Stats{}
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := Play(randutil.New(randutil.Derive(cfg.Seed, i)), cfg.HandSize)
				if err != nil {
					return fmt.Errorf("showdown %d: %w", i, err)
				}
				local.add(res)
			}
			cfg.Logger.Debug("worker finished", "from", lo, "to", hi)

			mu.Lock()
			total.merge(local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total.Elapsed = cfg.Clock.Since(start)
	cfg.Logger.Info("simulation complete",
		"showdowns", total.Showdowns,
		"workers", cfg.Workers,
		"seed", cfg.Seed,
		"elapsed", total.Elapsed)
	return total, nil
}
