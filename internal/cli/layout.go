package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/pipeline"
)

// layoutCommand creates the layout command for computing state positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	c.setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "layout [machine.json|machine.yaml]",
		Short: "Compute canvas positions for a state machine",
		Long: `Compute canvas positions for a state machine definition.

The layout command reads a machine file (JSON or YAML) and computes a
position for every state. The output is a layout.json file that can be
rendered to SVG/PNG/DOT using the 'render' command.

Two modes are available: 'fresh' (force-directed, organic clusters) and
'layered' (deterministic breadth-first columns).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, "layout mode: fresh (default), layered")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height")
	cmd.Flags().Float64Var(&opts.MinDistance, "min-distance", opts.MinDistance, "minimum distance between states")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible fresh layouts")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

// runLayout loads the machine, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if err := pipeline.ValidateMode(opts.Mode); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.MachinePath = input
	opts.Logger = c.Logger

	m, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load machine %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Mode))
	spinner.Start()

	res, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, m, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := layout.WriteResultFile(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(m.StateCount(), m.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", "statecanvas render "+outputPath)

	return nil
}
