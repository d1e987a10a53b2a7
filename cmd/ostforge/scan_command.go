package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ostforge/internal/assetpack"
	"ostforge/internal/logging"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the raw audio assets in the configured assets directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, err := ctx.newScanner(logging.NewNop())
			if err != nil {
				return err
			}
			assets, err := scanner.Scan(cmd.Context(), assetpack.TypeAudio)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, assets)
			}

			rows := make([][]string, 0, len(assets))
			for _, asset := range assets {
				duration := "?"
				if asset.Duration > 0 {
					duration = fmt.Sprintf("%.1fs", asset.Duration)
				}
				rate := "?"
				if asset.SampleRate > 0 {
					rate = fmt.Sprintf("%d Hz", asset.SampleRate)
				}
				rows = append(rows, []string{asset.Name, duration, rate})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]tableColumn{
				{name: "Asset"},
				{name: "Duration", numeric: true},
				{name: "Sample Rate", numeric: true},
			}, rows))
			fmt.Fprintf(out, "%d audio assets\n", len(assets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the asset list as JSON")
	return cmd
}
