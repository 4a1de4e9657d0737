package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/doctran/archdiag/pkg/catalog"
	"github.com/doctran/archdiag/pkg/pipeline"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the documentation diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList()
		},
	}
}

func (c *CLI) runList() error {
	entries := catalog.All()
	runner := pipeline.NewRunner(nil, c.Logger)

	nameWidth := 0
	for _, e := range entries {
		nameWidth = max(nameWidth, lipgloss.Width(e.Name))
	}
	nameStyle := StyleHighlight.Width(nameWidth + 2)
	dirStyle := StyleDim.Width(24)

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%d diagrams", len(entries))))
	for _, e := range entries {
		d, err := runner.Build(e)
		if err != nil {
			return err
		}
		counts := fmt.Sprintf("%s nodes  %s edges",
			StyleNumber.Render(fmt.Sprintf("%2d", d.NodeCount())),
			StyleNumber.Render(fmt.Sprintf("%2d", d.EdgeCount())))
		fmt.Println(nameStyle.Render(e.Name) + dirStyle.Render(e.Dir) + counts)
	}
	return nil
}
