package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"ostforge/internal/catalog"
	"ostforge/internal/encoding"
	"ostforge/internal/history"
	"ostforge/internal/workflow"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool
	var workers int
	var extraLoopPasses int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Extract, resolve, and encode the full soundtrack",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if overwrite {
				cfg.Output.OverwriteExisting = true
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workflow.Workers = workers
			}
			if cmd.Flags().Changed("extra-loop-passes") {
				cfg.Workflow.ExtraLoopPasses = extraLoopPasses
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another ostforge run is already active (lock %s)", cfg.LockPath())
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			scanner, err := ctx.newScanner(logger)
			if err != nil {
				return err
			}
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			encoder := encoding.NewFFmpeg(cfg.Encoder.FFmpegBinary, logger)
			manager := workflow.NewManager(cfg, cat, scanner, encoder, store, logger)

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			summary, err := manager.Run(runCtx)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				renderSummary(cmd, summary)
			}
			if !summary.Succeeded() {
				return fmt.Errorf("run %s finished with problems: %d missing, %d ambiguous, %d failed",
					summary.RunID, len(summary.Missing), len(summary.AmbiguousMatches), len(summary.EncodeFailures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Re-encode tracks whose output files already exist")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent encoder invocations")
	cmd.Flags().IntVar(&extraLoopPasses, "extra-loop-passes", 0, "Additional plays of every loop body")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	return cmd
}

func renderSummary(cmd *cobra.Command, summary *workflow.RunSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", summary.RunID)

	rows := [][]string{
		{"Encoded", fmt.Sprintf("%d", len(summary.Encoded))},
		{"Skipped", fmt.Sprintf("%d", len(summary.Skipped))},
		{"Missing", fmt.Sprintf("%d", len(summary.Missing))},
		{"Unmatched assets", fmt.Sprintf("%d", len(summary.UnmatchedRaw))},
		{"Ambiguous", fmt.Sprintf("%d", len(summary.AmbiguousMatches))},
		{"Failed", fmt.Sprintf("%d", len(summary.EncodeFailures))},
	}
	fmt.Fprintln(out, renderTable([]tableColumn{
		{name: "Outcome"},
		{name: "Count", numeric: true},
	}, rows))

	if len(summary.Missing) > 0 {
		fmt.Fprintf(out, "Missing tracks: %s\n", joinInts(summary.Missing))
	}
	for _, name := range summary.UnmatchedRaw {
		fmt.Fprintf(out, "Unmatched asset: %s\n", name)
	}
	for _, number := range sortedKeys(summary.AmbiguousMatches) {
		fmt.Fprintf(out, "Track %d ambiguous: %s\n", number, summary.AmbiguousMatches[number])
	}
	for _, number := range sortedKeys(summary.EncodeFailures) {
		fmt.Fprintf(out, "Track %d failed: %s\n", number, summary.EncodeFailures[number])
	}
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%d", value))
	}
	return strings.Join(parts, ", ")
}
