package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/statecanvas/statecanvas/pkg/layout"
	"github.com/statecanvas/statecanvas/pkg/pipeline"
)

// renderCommand creates the render command for generating diagram artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		watch      bool
	)
	opts := pipeline.Options{}
	c.setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render [machine.json|layout.json]",
		Short: "Render a state machine diagram",
		Long: `Render a state machine diagram to one or more output formats.

The input is either a machine definition (JSON or YAML), which runs the
full layout pipeline, or a layout.json produced by 'layout', which is
rendered directly without recomputing positions.

Formats: svg (native renderer), png (graphviz), pdf (rsvg-convert),
dot (pinned neato input), json (layout data).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateTheme(opts.Theme); err != nil {
				return err
			}
			if watch {
				return c.watchRender(cmd.Context(), args[0], opts, output, noCache)
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "watch the input file and re-render on change")

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, "layout mode: fresh (default), layered")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "svg theme: light (default), dark")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible fresh layouts")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

// runRender renders the input file to the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, stateCount, edgeCount, cached, err := c.produce(ctx, runner, input, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, input)
	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if output != "" && len(opts.Formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(stateCount, edgeCount, cached)

	return nil
}

// produce runs either the full pipeline (machine input) or the render
// stage alone (layout input) and returns the artifacts.
func (c *CLI) produce(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (map[string][]byte, int, int, bool, error) {
	if res, ok := readLayoutInput(input); ok {
		artifacts, cached, err := runner.RenderWithCacheInfo(ctx, res, opts)
		if err != nil {
			return nil, 0, 0, false, fmt.Errorf("render layout %s: %w", input, err)
		}
		return artifacts, len(res.Positions), len(res.Edges), cached, nil
	}

	opts.MachinePath = input
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, 0, 0, false, fmt.Errorf("render %s: %w", input, err)
	}
	cached := result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	return result.Artifacts, result.Stats.StateCount, result.Stats.EdgeCount, cached, nil
}

// readLayoutInput reports whether path holds a previously computed layout.
// Machine JSON decodes into a zero Result, so a set Mode distinguishes the two.
func readLayoutInput(path string) (layout.Result, bool) {
	if filepath.Ext(path) != ".json" {
		return layout.Result{}, false
	}
	res, err := layout.ReadResultFile(path)
	if err != nil || res.Mode == "" {
		return layout.Result{}, false
	}
	return res, true
}

// watchRender renders once, then re-renders whenever the input file changes.
// Editors replace files on save, so the watch is on the parent directory.
func (c *CLI) watchRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if err := c.runRender(ctx, input, opts, output, noCache); err != nil {
		printError("%v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	printInfo("Watching %s (ctrl-c to stop)", input)

	// Editors fire several events per save; coalesce them.
	const debounce = 200 * time.Millisecond
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			p := newProgress(loggerFromContext(ctx))
			if err := c.runRender(ctx, input, opts, output, noCache); err != nil {
				printError("%v", err)
				continue
			}
			p.done("Re-rendered")

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printWarning("watch error: %v", watchErr)
		}
	}
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output carries
// a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
