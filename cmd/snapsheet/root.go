package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "snapsheet",
		Short:         "Snap-point drawer engine: resolve layouts, replay gestures, try it in a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(flags, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Drawer configuration file (YAML)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log output format: console or json")

	cmd.AddCommand(newResolveCmd(app, flags))
	cmd.AddCommand(newSimulateCmd(app))
	cmd.AddCommand(newDemoCmd(app, flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
