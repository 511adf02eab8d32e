package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phambaophuc/paddington/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &cli.Runner{Stdout: os.Stdout}
	err := runner.Run(ctx, os.Args[1:])
	stop()

	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil || errors.Is(err, cli.ErrHelp) {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, err)
	return cli.ExitFailure
}
