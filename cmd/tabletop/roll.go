package main

import (
	"fmt"
	"strings"

	"github.com/lox/tabletop/cmd/tabletop/shared"
	"github.com/lox/tabletop/internal/randutil"
	"github.com/lox/tabletop/yahtzee"
)

// RollCmd rolls Yahtzee cups and scores the best combination of each.
type RollCmd struct {
	Rolls int    `kong:"default='1',help='Number of cups to roll'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *RollCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := randutil.Seed(c.Seed)
	logger.Debug().Int64("seed", seed).Int("rolls", c.Rolls).Msg("Rolling Yahtzee cups")

	rng := randutil.New(seed)

	for i := 0; i < c.Rolls; i++ {
		cup := yahtzee.RollCup(rng)
		result := yahtzee.Classify(cup.Dice())

		pips := make([]string, 0, yahtzee.CupSize)
		for _, d := range cup.Dice() {
			pips = append(pips, d.String())
		}
		fmt.Printf("%s  %s (%d points)\n", strings.Join(pips, " "), result.Combination, result.Score())
	}

	return nil
}
