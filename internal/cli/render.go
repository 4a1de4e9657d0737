package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doctran/archdiag/pkg/catalog"
	"github.com/doctran/archdiag/pkg/errors"
	"github.com/doctran/archdiag/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	all     bool   // render every catalog entry
	formats string // comma-separated output formats
	output  string // output root directory
	flat    bool   // write all files directly into output
	noCache bool   // disable the render cache
	refresh bool   // ignore cached artifacts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [name...]",
		Short: "Render diagrams to image files",
		Long: `Render builds the named diagrams (or all of them with --all) and writes
one file per format into the documentation directory of each diagram,
relative to the output root.`,
		ValidArgsFunction: completeDiagramNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := selectEntries(args, opts.all)
			if err != nil {
				return err
			}
			popts, err := c.renderOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), entries, popts, opts.noCache)
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "render every diagram")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, jpg, pdf, dot, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output root directory (default: config output or .)")
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "write files directly into the output root")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// selectEntries resolves positional names, or the whole catalog for --all.
func selectEntries(names []string, all bool) ([]catalog.Entry, error) {
	if all {
		if len(names) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--all cannot be combined with diagram names")
		}
		return catalog.All(), nil
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "specify diagram names or --all (see 'archdiag list')")
	}
	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		e, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// renderOptions merges flags over the config file.
func (c *CLI) renderOptions(cmd *cobra.Command, opts renderOpts) (pipeline.Options, error) {
	popts := c.config.pipelineOptions()
	flags := cmd.Flags()
	if flags.Changed("format") {
		popts.Formats = pipeline.ParseFormats(opts.formats)
	}
	if flags.Changed("output") {
		popts.OutputDir = opts.output
	}
	if flags.Changed("flat") {
		popts.Flat = opts.flat
	}
	popts.Refresh = opts.refresh
	popts.Logger = loggerFromContext(cmd.Context())
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return popts, nil
}

func (c *CLI) runRender(ctx context.Context, entries []catalog.Entry, opts pipeline.Options, noCache bool) error {
	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	prog := newProgress(opts.Logger)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", e.Name))
		spinner.Start()
		res, err := runner.Execute(ctx, e, opts)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Rendering %s failed", e.Name))
			return err
		}
		spinner.Stop()

		printSuccess("Rendered %s", StyleHighlight.Render(res.Name))
		cached := res.CacheInfo.AllHit()
		printStats(res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.ClusterCount, &cached)
		for _, p := range res.Paths {
			printFile(p)
		}
	}
	prog.done(fmt.Sprintf("Rendered %d diagrams", len(entries)))
	return nil
}
