package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ostforge/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent extraction runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				runs, err := store.RecentRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, runs)
				}

				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					finished := "running"
					if !run.FinishedAt.IsZero() {
						finished = run.FinishedAt.Local().Format(time.RFC3339)
					}
					rows = append(rows, []string{
						run.ID,
						run.StartedAt.Local().Format(time.RFC3339),
						finished,
						fmt.Sprintf("%d", run.Resolved),
						fmt.Sprintf("%d", run.Missing),
						fmt.Sprintf("%d", run.Failures),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
					{name: "Run"},
					{name: "Started"},
					{name: "Finished"},
					{name: "Resolved", numeric: true},
					{name: "Missing", numeric: true},
					{name: "Failed", numeric: true},
				}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of runs to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run list as JSON")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show per-track outcomes for one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				tracks, err := store.RunTracks(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if len(tracks) == 0 {
					return fmt.Errorf("no recorded tracks for run %q", args[0])
				}
				if jsonOutput {
					return writeJSON(cmd, tracks)
				}

				rows := make([][]string, 0, len(tracks))
				for _, track := range tracks {
					rows = append(rows, []string{
						fmt.Sprintf("%02d", track.Number),
						track.Title,
						string(track.Status),
						track.Detail,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
					{name: "#", numeric: true},
					{name: "Title"},
					{name: "Status"},
					{name: "Detail"},
				}, rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the track outcomes as JSON")
	return cmd
}
