package main

import (
	"fmt"

	"github.com/lox/tabletop/cmd/tabletop/shared"
	"github.com/lox/tabletop/internal/randutil"
	"github.com/lox/tabletop/poker"
)

// DealCmd deals poker hands from a shuffled deck and classifies each one.
type DealCmd struct {
	Hands int    `kong:"default='1',help='Number of hands to deal'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *DealCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := randutil.Seed(c.Seed)
	logger.Debug().Int64("seed", seed).Int("hands", c.Hands).Msg("Dealing poker hands")

	rng := randutil.New(seed)
	deck := poker.NewDeck(rng)
	deck.Shuffle()

	for i := 0; i < c.Hands; i++ {
		if deck.CardsRemaining() < 5 {
			deck.Reset()
		}

		hand := deck.DealN(5)
		category := poker.Classify(hand)
		fmt.Printf("%s  %s\n", poker.FormatCards(hand), category)
	}

	return nil
}
