package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/doctran/archdiag/pkg/catalog"
	"github.com/doctran/archdiag/pkg/diagram"
	"github.com/doctran/archdiag/pkg/errors"
	pkgio "github.com/doctran/archdiag/pkg/io"
	"github.com/doctran/archdiag/pkg/pipeline"
)

// validateOpts holds the command-line flags for the validate command.
type validateOpts struct {
	manifests string // directory of committed <name>.json manifests
	update    bool   // rewrite the committed manifests
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var opts validateOpts

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build and check every diagram",
		Long: `Validate runs the construction pass of every diagram and checks that
names are plain file names, every edge joins declared nodes and no
construction errors were recorded. Nothing is rendered.

With --manifests, each rebuilt diagram is also compared against the
committed <name>.json manifest in that directory. --update rewrites the
manifests from the current diagrams instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.update && opts.manifests == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--update requires --manifests")
			}
			return c.runValidate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.manifests, "manifests", "", "directory of committed manifests to compare against")
	cmd.Flags().BoolVar(&opts.update, "update", false, "rewrite the committed manifests")

	return cmd
}

func (c *CLI) runValidate(opts validateOpts) error {
	runner := pipeline.NewRunner(nil, c.Logger)
	entries := catalog.All()

	if opts.update {
		if err := os.MkdirAll(opts.manifests, 0755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", opts.manifests)
		}
	}

	failed := 0
	for _, e := range entries {
		d, err := runner.Build(e)
		if err == nil && opts.manifests != "" {
			err = checkManifest(d, opts)
		}
		if err != nil {
			failed++
			printError("%s: %s", e.Name, errors.UserMessage(err))
			continue
		}
		printSuccess("%s", e.Name)
		printStats(d.NodeCount(), d.EdgeCount(), d.ClusterCount(), nil)
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%d of %d diagrams invalid", failed, len(entries))
	}
	printNewline()
	printNextStep("Render them", "archdiag render --all")
	return nil
}

// checkManifest compares d with its committed manifest, or rewrites the
// manifest when updating.
func checkManifest(d *diagram.Diagram, opts validateOpts) error {
	path := filepath.Join(opts.manifests, d.Filename(pipeline.FormatJSON))
	if opts.update {
		if err := pkgio.ExportJSON(d, path); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write manifest")
		}
		printFile(path)
		return nil
	}

	committed, err := pkgio.ImportJSON(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "read manifest")
	}
	diff := pkgio.Diff(committed, pkgio.NewManifest(d))
	if len(diff) == 0 {
		return nil
	}
	for _, line := range diff {
		printDetail("%s", line)
	}
	return errors.New(errors.ErrCodeInvalidInput, "manifest %s is out of date (%d differences)", path, len(diff))
}
