package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "1.0.0"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Decide   DecideCmd        `cmd:"" help:"Resolve one betting decision for a personality"`
	Battle   BattleCmd        `cmd:"" help:"Fight one battle between two monsters"`
	Simulate SimulateCmd      `cmd:"" help:"Run many decisions or battles and summarise the outcomes"`
	Presets  PresetsCmd       `cmd:"" help:"List the personality presets"`
	Bestiary BestiaryCmd      `cmd:"" help:"List the monster bestiary"`
	Table    TableCmd         `cmd:"" help:"Preview every seat's decision for a configured table"`
	Arena    ArenaCmd         `cmd:"" help:"Serve the engines over websocket"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokermon"),
		kong.Description("Personality-driven poker decisions with creature battles"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": "pokermon version " + version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
