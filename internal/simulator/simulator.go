// Package simulator runs seeded classification sweeps and aggregates the
// observed category frequencies.
package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tabletop/internal/randutil"
	"github.com/lox/tabletop/internal/statistics"
	"github.com/lox/tabletop/poker"
	"github.com/lox/tabletop/yahtzee"
)

// Game selects which classifier a sweep exercises.
type Game string

const (
	GamePoker   Game = "poker"
	GameYahtzee Game = "yahtzee"
)

// Config holds configuration for running simulations
type Config struct {
	Game    Game
	Hands   int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Simulator deals or rolls hands, classifies each one and tallies the
// outcomes. Every hand derives its own seed from the base seed plus the
// hand index, so results are identical for a given seed no matter how many
// workers run the sweep.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the sweep and returns the aggregated tally.
func (s *Simulator) Run(ctx context.Context) (*statistics.Tally, error) {
	if s.config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", s.config.Hands)
	}
	if s.config.Game != GamePoker && s.config.Game != GameYahtzee {
		return nil, fmt.Errorf("unknown game %q", s.config.Game)
	}

	s.config.Logger.Info("Starting classification sweep",
		"game", s.config.Game,
		"hands", s.config.Hands,
		"seed", s.config.Seed,
		"workers", s.config.Workers)

	tallies := make([]*statistics.Tally, s.config.Workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < s.config.Workers; w++ {
		worker := w
		tallies[worker] = statistics.New()
		g.Go(func() error {
			// Stride over hand indices so the partition is fixed by
			// worker count but the per-hand seeds are not.
			for hand := worker; hand < s.config.Hands; hand += s.config.Workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				handSeed := s.config.Seed + int64(hand)
				tallies[worker].Add(s.classifyHand(handSeed))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := statistics.New()
	for _, tally := range tallies {
		total.Merge(tally)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Sweep complete", "hands", total.Total, "categories", len(total.Counts))
	return total, nil
}

// classifyHand deals or rolls one seeded hand and returns its category name.
func (s *Simulator) classifyHand(seed int64) string {
	rng := randutil.New(seed)

	if s.config.Game == GamePoker {
		deck := poker.NewDeck(rng)
		deck.Shuffle()
		return poker.Classify(deck.DealN(5)).String()
	}

	cup := yahtzee.RollCup(rng)
	return yahtzee.Classify(cup.Dice()).Combination.String()
}
