package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Odds      OddsCmd          `cmd:"" help:"Estimate high/low odds for a hand and recommend an action"`
	Deal      DealCmd          `cmd:"" help:"Deal a random hand and walk it through every reveal"`
	Score     ScoreCmd         `cmd:"" help:"Score a five card hand for high and low"`
	Wild      WildCmd          `cmd:"" help:"Show which ranks are wild for a board"`
	Calibrate CalibrateCmd     `cmd:"" help:"Play many deals and compare the advice with real showdowns"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ftq"),
		kong.Description("Odds and advice for follow-the-queen high/low stud"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}
