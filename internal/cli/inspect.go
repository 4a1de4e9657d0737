package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doctran/archdiag/pkg/catalog"
	"github.com/doctran/archdiag/pkg/errors"
	pkgio "github.com/doctran/archdiag/pkg/io"
	"github.com/doctran/archdiag/pkg/pipeline"
	"github.com/doctran/archdiag/pkg/topology"
)

const (
	inspectJSON = "json"
	inspectYAML = "yaml"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Print a diagram's structure",
		Long: `Inspect prints the structure of one diagram without rendering it.

  json  the manifest: clusters, nodes and edges with their IDs
  yaml  the data-flow topology: successors per node, sources, sinks and
        a flow order`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDiagramNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", inspectJSON, "output format: json, yaml")
	return cmd
}

func (c *CLI) runInspect(w io.Writer, name, format string) error {
	if format != inspectJSON && format != inspectYAML {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid inspect format: %q (must be json or yaml)", format)
	}
	e, err := catalog.Lookup(name)
	if err != nil {
		return err
	}
	d, err := pipeline.NewRunner(nil, c.Logger).Build(e)
	if err != nil {
		return err
	}

	if format == inspectJSON {
		return pkgio.WriteJSON(pkgio.NewManifest(d), w)
	}

	topo, err := topology.Build(d)
	if err != nil {
		return fmt.Errorf("topology: %w", err)
	}
	report := topo.Report(d)
	if report.Cyclic {
		c.Logger.Warn("diagram has a flow cycle; flow order is declaration order", "name", name)
	}
	return pkgio.WriteYAML(report, w)
}
