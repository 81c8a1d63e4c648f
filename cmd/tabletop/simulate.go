package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/tabletop/cmd/tabletop/shared"
	"github.com/lox/tabletop/internal/randutil"
	"github.com/lox/tabletop/internal/simulator"
)

// SimulateCmd runs a classification frequency sweep and reports how often
// each category occurred, with a 95% confidence interval per category.
type SimulateCmd struct {
	Game    string `kong:"default='poker',enum='poker,yahtzee',help='Game to simulate'"`
	Hands   int    `kong:"default='10000',help='Number of hands to classify'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Workers int    `kong:"default='4',help='Concurrent workers'"`
	Config  string `kong:"type='existingfile',help='HCL scenario file (overrides flags)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	var cfg simulator.Config
	if c.Config != "" {
		loaded, err := simulator.LoadScenario(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = simulator.Config{
			Game:    simulator.Game(c.Game),
			Hands:   c.Hands,
			Seed:    randutil.Seed(c.Seed),
			Workers: c.Workers,
		}
	}
	cfg.Logger = logger

	ctx := shared.SetupSignalHandler()

	tally, err := simulator.New(cfg).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%-18s %10s %10s %22s\n", "CATEGORY", "COUNT", "FREQ", "95% CI")
	for _, category := range tally.Categories() {
		lo, hi := tally.ConfidenceInterval95(category)
		fmt.Printf("%-18s %10d %9.4f%% %10.4f%% - %.4f%%\n",
			category,
			tally.Counts[category],
			tally.Proportion(category)*100,
			lo*100, hi*100)
	}

	return nil
}
