package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ostforge/internal/assetpack"
	"ostforge/internal/catalog"
	"ostforge/internal/logging"
	"ostforge/internal/reconcile"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Match scanned assets against the track table without encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner, err := ctx.newScanner(logging.NewNop())
			if err != nil {
				return err
			}
			assets, err := scanner.Scan(cmd.Context(), assetpack.TypeAudio)
			if err != nil {
				return err
			}
			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			result := reconcile.Resolve(cat, assets)
			if jsonOutput {
				return writeJSON(cmd, resolveReport(cat, result))
			}
			renderResolution(cmd.OutOrStdout(), cat, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the resolution as JSON")
	return cmd
}

type resolvedTrack struct {
	Number int      `json:"number"`
	Title  string   `json:"title"`
	Assets []string `json:"assets"`
}

type resolutionReport struct {
	Resolved  []resolvedTrack `json:"resolved"`
	Missing   []int           `json:"missing"`
	Unmatched []string        `json:"unmatched"`
	Ambiguous []string        `json:"ambiguous"`
}

func resolveReport(cat *catalog.Catalog, result reconcile.Result) resolutionReport {
	report := resolutionReport{
		Missing:   result.Missing,
		Unmatched: result.UnmatchedRaw,
	}
	for _, entry := range cat.Entries() {
		resolved, ok := result.Resolution[entry.Number]
		if !ok {
			continue
		}
		track := resolvedTrack{Number: entry.Number, Title: entry.Title}
		for _, segment := range resolved {
			track.Assets = append(track.Assets, segment.Asset.Name)
		}
		report.Resolved = append(report.Resolved, track)
	}
	for _, ambiguous := range result.Ambiguous {
		report.Ambiguous = append(report.Ambiguous, ambiguous.Error())
	}
	return report
}

func renderResolution(out io.Writer, cat *catalog.Catalog, result reconcile.Result) {
	colorize := shouldColorize(out)

	ambiguous := make(map[int]bool, len(result.Ambiguous))
	for _, failure := range result.Ambiguous {
		ambiguous[failure.Number] = true
	}

	rows := make([][]string, 0, cat.Len())
	for _, entry := range cat.Entries() {
		status := "resolved"
		detail := ""
		if resolved, ok := result.Resolution[entry.Number]; ok {
			names := make([]string, 0, len(resolved))
			for _, segment := range resolved {
				names = append(names, segment.Asset.Name)
			}
			detail = strings.Join(names, " + ")
		} else if ambiguous[entry.Number] {
			status = "ambiguous"
		} else {
			status = "missing"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%02d", entry.Number),
			entry.Title,
			paint(status, statusColor(status), colorize),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable([]tableColumn{
		{name: "#", numeric: true},
		{name: "Title"},
		{name: "Status"},
		{name: "Assets"},
	}, rows))

	for _, ambiguous := range result.Ambiguous {
		fmt.Fprintln(out, paint(ambiguous.Error(), ansiRed, colorize))
	}
	for _, name := range result.UnmatchedRaw {
		fmt.Fprintln(out, paint("unmatched: "+name, ansiYellow, colorize))
	}
}

func statusColor(status string) string {
	switch status {
	case "missing":
		return ansiRed
	case "ambiguous":
		return ansiYellow
	default:
		return ""
	}
}

func paint(value, color string, colorize bool) string {
	if !colorize || color == "" {
		return value
	}
	return color + value + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
