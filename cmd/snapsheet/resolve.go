package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/geometry"
)

const fallbackViewportHeight = 800

type resolveOptions struct {
	height float64
}

func newResolveCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved offset of every snap point",
		Long: `Resolve maps each configured snap point to a drawer height and a top offset
for a viewport. Without --height the terminal row count is used, or 800 when
stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, app, root, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.height, "height", 0, "Viewport height in pixels")

	return cmd
}

func runResolve(cmd *cobra.Command, app *AppContext, root *rootFlags, opts *resolveOptions) error {
	cfg, err := app.loadDrawer(root.configPath)
	if err != nil {
		return err
	}

	height := opts.height
	if height <= 0 {
		height = terminalHeight()
	}

	layout, err := geometry.Resolve(cfg.SnapPoints, height)
	if err != nil {
		app.Logger.Error(err, "resolve failed")
		return err
	}
	app.Logger.WithFields(map[string]any{"viewport_height": height, "points": len(cfg.SnapPoints)}).Debug("layout resolved")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "viewport height: %g\n\n", height)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tPOINT\tHEIGHT\tOFFSET")
	for i, p := range layout.Points {
		fmt.Fprintf(w, "%d\t%g\t%g\t%g\n", i, p, height-layout.Offsets[i], layout.Offsets[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\ntopmost: %g  offscreen: %g\n", layout.Topmost, layout.Offscreen)
	return nil
}

func terminalHeight() float64 {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackViewportHeight
	}
	_, h, err := term.GetSize(fd)
	if err != nil || h <= 0 {
		return fallbackViewportHeight
	}
	return float64(h)
}
