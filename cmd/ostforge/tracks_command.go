package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ostforge/internal/catalog"
)

func newTracksCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "tracks",
		Short:       "List the album's canonical track table",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			entries := cat.Entries()
			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				notes := ""
				if entry.BodyPasses() > 1 {
					notes = fmt.Sprintf("x%d", entry.BodyPasses())
				}
				rows = append(rows, []string{
					fmt.Sprintf("%02d", entry.Number),
					entry.Title,
					entry.Artist,
					entry.Role.String(),
					notes,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]tableColumn{
				{name: "#", numeric: true},
				{name: "Title"},
				{name: "Artist"},
				{name: "Role"},
				{name: "Plays", numeric: true},
			}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the track table as JSON")
	return cmd
}
