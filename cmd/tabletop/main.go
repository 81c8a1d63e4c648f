package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Deal poker hands and classify them"`
	Roll     RollCmd          `cmd:"" help:"Roll Yahtzee cups and score them"`
	Simulate SimulateCmd      `cmd:"" help:"Run a classification frequency sweep"`
	Fixtures FixturesCmd      `cmd:"" help:"Generate JSON classification fixtures"`
	Serve    ServeCmd         `cmd:"" help:"Serve classifications over WebSocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tabletop"),
		kong.Description("Poker and Yahtzee hand classification toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
