package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/tui/sheet"
)

type demoOptions struct {
	watch bool
}

func newDemoCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive terminal drawer",
		Long: `Demo opens a drawer in the terminal. Drag the handle with the mouse, scroll
the content, and release to snap or dismiss. With --watch the drawer is remounted
whenever the --config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(app, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the drawer when the config file changes")

	return cmd
}

func runDemo(app *AppContext, root *rootFlags, opts *demoOptions) error {
	var cfg config.Drawer
	if root.configPath != "" {
		loaded, err := app.loadDrawer(root.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	var watcher *sheet.ConfigWatcher
	if opts.watch {
		if root.configPath == "" {
			return newCommandError("start demo", "watching configuration", fmt.Errorf("--watch needs --config"), "Pass the drawer file with --config.")
		}
		w, err := sheet.WatchConfig(root.configPath)
		if err != nil {
			return newCommandError("start demo", "watching configuration", err, "Check that the config directory is readable.")
		}
		defer w.Close()
		watcher = w
	}

	m, err := sheet.New(sheet.Options{
		Config:    cfg,
		FrameRate: app.Env.FrameRate,
		StartOpen: true,
		Logger:    app.Logger,
		Watcher:   watcher,
	})
	if err != nil {
		return err
	}
	defer m.Close()

	app.Logger.Info("launching demo")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}
	app.Logger.Info("demo closed")
	return nil
}
