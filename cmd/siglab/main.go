package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/reusee/dscope"

	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/modes"
	"github.com/reusee/siglab/sigplay"
)

var (
	runArgs    = cmds.Var[string]("run")
	replayArgs = cmds.Var[string]("replay")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *runArgs == "" && *replayArgs == "" {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		player *sigplay.Player,
	) {
		if *replayArgs != "" {
			ce(player.LoadGraph(*replayArgs))
		}
		ce(player.Run(ctx, *runArgs))
	})
}
