package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"pokerrank.hcl" help:"Path to HCL configuration file"`
	Debug    bool   `help:"Enable debug logging"`
	JSONLogs bool   `name:"json-logs" help:"Emit structured JSON logs"`
	NoColor  bool   `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Showdown  ShowdownCmd      `cmd:"" help:"Deal pairs of hands forever, printing those where both beat the threshold"`
	HighHands HighHandsCmd     `cmd:"high-hands" help:"Deal single hands forever, printing those that beat the threshold"`
	Rank      RankCmd          `cmd:"" help:"Rank a five-card hand"`
	Compare   CompareCmd       `cmd:"" help:"Compare two five-card hands"`
	Profile   ProfileCmd       `cmd:"" help:"Classify many random hands and tabulate category frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerrank"),
		kong.Description("Five-card poker hand ranking and comparison"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
