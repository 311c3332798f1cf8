package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/statecanvas/statecanvas/internal/cli"
)

func main() {
	// Interrupts cancel the context so long-running work (serve, render
	// --watch, layout of large machines) shuts down cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	// The flag value is only known after parsing, so the log level is
	// raised in PersistentPreRunE rather than at construction.
	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")

	wiredPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if wiredPreRun != nil {
			return wiredPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
