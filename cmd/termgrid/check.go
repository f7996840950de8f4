package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/young1lin/termgrid/grid"
	"github.com/young1lin/termgrid/layout"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "check [layout.yaml]",
		Short: "Validate a layout and list its cells",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.resolvePath()
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := opts.load(path)
			if err != nil {
				return err
			}

			area := layout.NewRect(0, 0, width, height)
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "Cell", "Area", "Label")
			i := 0
			for slot := range doc.Builder.Slots(area, layout.Spacing{}) {
				t.Row(
					fmt.Sprint(i+1),
					slotPath(slot.Path),
					fmt.Sprintf("%d,%d %dx%d", slot.Area.X, slot.Area.Y, slot.Area.W, slot.Area.H),
					doc.Label(i),
				)
				i++
			}

			name := doc.Name
			if name == "" {
				name = "layout"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: version %s, %d rows, %d cells at %dx%d\n",
				name, doc.Version, doc.Builder.Rows(), doc.Builder.Leaves(), width, height)
			if i > 0 {
				fmt.Fprintln(out, t.Render())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultWidth, "area width")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "area height")
	return cmd
}

// slotPath names a cell the way layout documents do, e.g.
// rows[1].cells[0].grid.rows[0].cells[2]
func slotPath(path []grid.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("rows[%d].cells[%d]", c.Row, c.Cell)
	}
	return strings.Join(parts, ".grid.")
}
