// Command fetch_input downloads an Advent of Code puzzle input to stdout.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NielsdaWheelz/aocday/internal/cli"
	"github.com/NielsdaWheelz/aocday/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.RunFetch(ctx, os.Args[1:], cli.OSDeps())
	stop()
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
