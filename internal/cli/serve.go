package cli

import (
	"github.com/spf13/cobra"

	"github.com/doctran/archdiag/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered diagrams over HTTP for live preview",
		Long: `Serve starts the preview server. Each request builds the diagram afresh,
so edits show up on the next refresh after a rebuild.

  GET /healthz
  GET /diagrams               catalog listing (JSON)
  GET /diagrams/<name>.<fmt>  rendered diagram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Server.Addr
			}
			if addr == "" {
				addr = server.DefaultAddr
			}

			ctx := cmd.Context()
			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			opts := c.config.pipelineOptions()
			printInfo("Preview at %s", StyleLink.Render("http://"+addr+"/diagrams"))
			return server.New(runner, opts, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	return cmd
}
