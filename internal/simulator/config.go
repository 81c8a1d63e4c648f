package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ScenarioFile is the root of an HCL simulation scenario.
type ScenarioFile struct {
	Scenario ScenarioBlock `hcl:"scenario,block"`
}

// ScenarioBlock describes one sweep: which game, how many hands, which seed.
type ScenarioBlock struct {
	Game    string `hcl:"game"`
	Hands   int    `hcl:"hands,optional"`
	Seed    int64  `hcl:"seed,optional"`
	Workers int    `hcl:"workers,optional"`
}

const (
	defaultHands   = 10000
	defaultWorkers = 4
)

// LoadScenario reads a scenario file and returns a simulator config with
// defaults applied for missing values.
func LoadScenario(filename string) (Config, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return parseScenario(src, filename)
}

func parseScenario(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var scenario ScenarioFile
	diags = gohcl.DecodeBody(file.Body, nil, &scenario)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Config{
		Game:    Game(scenario.Scenario.Game),
		Hands:   scenario.Scenario.Hands,
		Seed:    scenario.Scenario.Seed,
		Workers: scenario.Scenario.Workers,
	}

	// Apply defaults for missing values
	if cfg.Hands == 0 {
		cfg.Hands = defaultHands
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}

	if cfg.Game != GamePoker && cfg.Game != GameYahtzee {
		return Config{}, fmt.Errorf("unknown game %q (expected %q or %q)",
			cfg.Game, GamePoker, GameYahtzee)
	}

	return cfg, nil
}
