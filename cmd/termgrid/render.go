package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/young1lin/termgrid/tui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(opts.resolvePath())
			if err != nil {
				return err
			}

			w, h := frameSize(width, height)
			opts.log().Debug("rendering", "width", w, "height", h)

			model, _ := tui.NewModel(doc).Update(tea.WindowSizeMsg{Width: w, Height: h})
			fmt.Fprintln(cmd.OutOrStdout(), model.View())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "frame width (default: terminal width)")
	cmd.Flags().IntVar(&height, "height", 0, "frame height (default: terminal height)")
	return cmd
}

// frameSize fills in unset dimensions from the terminal, falling back to
// 80x24 when stdout is not a terminal
func frameSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := term.GetSize(os.Stdout.Fd())
	if err != nil || tw <= 0 || th <= 0 {
		tw, th = defaultWidth, defaultHeight
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
