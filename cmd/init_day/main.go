// Command init_day scaffolds a project directory for one Advent of Code day.
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
	err := cli.RunInitDay(ctx, os.Args[1:], cli.OSDeps())
	stop()
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
