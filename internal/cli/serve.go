package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statecanvas/statecanvas/internal/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Run the HTTP layout API.

The server exposes the layout pipeline over JSON:

  GET  /healthz    liveness check
  POST /v1/layout  machine definition in, layout JSON out
  POST /v1/render  machine definition in, rendered artifact out

The server shares the cache configured for the CLI and shuts down
gracefully on interrupt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			server := api.NewServer(runner, c.Logger)
			return server.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
