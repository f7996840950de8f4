package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/young1lin/termgrid/internal/config"
	"github.com/young1lin/termgrid/internal/layoutfile"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	layoutPath string
	debug      bool
	logger     *slog.Logger

	// findLayout locates a layout document when --layout is not given,
	// searching from projectDir or the working directory when it is ""
	findLayout func(projectDir string) string
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&rootOptions{findLayout: config.FindLayout})
}

func newRootCmdWithOptions(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termgrid",
		Short: "Declarative grid layouts for the terminal",
		Long: `termgrid - Lay out terminal screens as rows of cells.

Layouts are YAML documents. Without --layout, .termgrid/layout.yaml in the
current directory is used, then layout.yaml in the user config directory,
then a built-in demo.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.layoutPath, "layout", "l", "", "layout document to use")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newRenderCmd(opts),
		newViewCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// resolvePath returns the layout document to use, or "" for the built-in demo
func (o *rootOptions) resolvePath() string {
	if o.layoutPath != "" {
		return o.layoutPath
	}
	// "" searches from the working directory
	return o.findLayout("")
}

// load reads the layout at path, or the built-in demo when path is ""
func (o *rootOptions) load(path string) (*layoutfile.Document, error) {
	if path == "" {
		o.log().Debug("using built-in layout")
		return layoutfile.Demo(), nil
	}
	o.log().Debug("loading layout", "path", path)
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	return doc, nil
}

func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}
