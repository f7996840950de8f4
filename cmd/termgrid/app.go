package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/young1lin/termgrid/internal/layoutfile"
	"github.com/young1lin/termgrid/internal/watch"
	"github.com/young1lin/termgrid/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the interactive viewer
type AppDependencies struct {
	// LayoutPath is the document to show and watch, "" for the built-in demo
	LayoutPath     string
	Loader         func(string) (*layoutfile.Document, error)
	WatcherCreator func(string) (watch.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
	Logger         *slog.Logger
}

func newViewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the layout interactively, reloading it when the file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &AppDependencies{
				LayoutPath: opts.resolvePath(),
				Loader:     opts.load,
				WatcherCreator: func(path string) (watch.WatcherInterface, error) {
					return watch.NewWatcher(path)
				},
				ProgramRunner: func(p *tea.Program) error {
					_, err := p.Run()
					return err
				},
				Logger: opts.log(),
			})
		},
	}
}

func run(ctx context.Context, deps *AppDependencies) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc, err := deps.Loader(deps.LayoutPath)
	if err != nil {
		return err
	}

	model := tui.NewModel(doc)

	var watcher watch.WatcherInterface
	if deps.LayoutPath != "" {
		model = model.WithReload(reloadCmd(deps.Loader, deps.LayoutPath))

		watcher, err = deps.WatcherCreator(deps.LayoutPath)
		if err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
		defer watcher.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Stop watching once the program exits
		defer cancel()
		return deps.ProgramRunner(p)
	})
	if watcher != nil {
		g.Go(func() error {
			runWatchLoop(gctx, p, watcher, deps.Loader, logger)
			return nil
		})
	}
	return g.Wait()
}

// reloadCmd returns a command that reloads the layout at path
func reloadCmd(load func(string) (*layoutfile.Document, error), path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := load(path)
		if err != nil {
			return tui.LayoutErrorMsg{Err: err}
		}
		return tui.LayoutLoadedMsg{Doc: doc}
	}
}

// runWatchLoop reloads the layout after every change and forwards the result
// to the program. It returns when ctx is done, the watcher closes or fails.
func runWatchLoop(ctx context.Context, sender ProgramSender, watcher watch.WatcherInterface, load func(string) (*layoutfile.Document, error), logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return

		case path, ok := <-watcher.Changes():
			if !ok {
				return
			}
			doc, err := load(path)
			if err != nil {
				logger.Warn("layout reload failed", "path", path, "err", err)
				sender.Send(tui.LayoutErrorMsg{Err: err})
				continue
			}
			logger.Debug("layout reloaded", "path", path, "cells", doc.Builder.Leaves())
			sender.Send(tui.LayoutLoadedMsg{Doc: doc})

		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			logger.Error("watcher failed", "err", err)
			sender.Send(tui.WatcherFailedMsg{Err: fmt.Errorf("watcher error: %w", err)})
			return
		}
	}
}
