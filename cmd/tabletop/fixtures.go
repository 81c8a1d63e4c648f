package main

import (
	"github.com/lox/tabletop/cmd/tabletop/shared"
	"github.com/lox/tabletop/internal/fixtures"
	"github.com/lox/tabletop/internal/randutil"
)

// FixturesCmd writes a JSON fixture file of seeded hands and their expected
// classifications. Regenerating with the same seed is byte-identical.
type FixturesCmd struct {
	Game   string `kong:"default='poker',enum='poker,yahtzee',help='Game to generate fixtures for'"`
	Count  int    `kong:"default='100',help='Number of hands'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Output string `kong:"default='fixtures.json',help='Output file path'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *FixturesCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := randutil.Seed(c.Seed)
	if err := fixtures.Write(c.Output, c.Game, c.Count, seed); err != nil {
		return err
	}

	logger.Info().
		Str("game", c.Game).
		Int("count", c.Count).
		Int64("seed", seed).
		Str("output", c.Output).
		Msg("Wrote fixtures")

	return nil
}
