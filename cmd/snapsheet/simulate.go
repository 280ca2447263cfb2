package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/snapsheet/internal/scenario"
)

type simulateOptions struct {
	jsonOutput bool
}

func newSimulateCmd(app *AppContext) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <scenario-file>",
		Short: "Replay a scripted gesture trace against a headless drawer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the timeline in JSON format")

	return cmd
}

func runSimulate(cmd *cobra.Command, app *AppContext, path string, opts *simulateOptions) error {
	log := app.Logger.With("scenario_file", path)

	sc, err := scenario.Parse(path)
	if err != nil {
		log.Error(err, "scenario rejected")
		return err
	}

	log.Info("replaying scenario")
	res, err := scenario.NewRunner(app.Logger, nil).Run(cmd.Context(), sc)
	if err != nil {
		log.Error(err, "scenario failed")
		return err
	}

	if opts.jsonOutput {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode timeline: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	return renderTimeline(cmd.OutOrStdout(), sc, res)
}

func renderTimeline(out io.Writer, sc *scenario.Scenario, res *scenario.Result) error {
	fmt.Fprintf(out, "scenario: %s\n", res.Name)
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tACTION\tPHASE\tINDEX\tOFFSET\tBACKDROP\tRESULT")
	for _, rec := range res.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.1f\t%.2f\t%s\n",
			rec.Step, rec.Action, rec.State.Phase, rec.State.ActiveIndex, rec.State.Position, rec.State.Backdrop, describeRecord(rec))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nevents:")
	if len(res.Events) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, ev := range res.Events {
		switch {
		case ev.Open != nil:
			fmt.Fprintf(out, "  step %d: open changed to %t\n", ev.Step, *ev.Open)
		case ev.Index != nil:
			fmt.Fprintf(out, "  step %d: snapped to %d\n", ev.Step, *ev.Index)
		}
	}
	return nil
}

func describeRecord(rec scenario.Record) string {
	var parts []string
	if rec.Outcome != "" {
		parts = append(parts, rec.Outcome)
	}
	if rec.Target != nil {
		if *rec.Target < 0 {
			parts = append(parts, "-> dismiss")
		} else {
			parts = append(parts, fmt.Sprintf("-> %d", *rec.Target))
		}
	}
	if rec.Frames > 0 {
		parts = append(parts, fmt.Sprintf("%d frames", rec.Frames))
	}
	if rec.Error != "" {
		parts = append(parts, "error: "+rec.Error)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
