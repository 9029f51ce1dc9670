package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"romshelf/internal/organizer"
)

// printReport renders a run report: a placements table when anything landed,
// then skip/failure details, then the one-line summary.
func printReport(cmd *cobra.Command, report *organizer.Report) {
	out := cmd.OutOrStdout()

	var rows [][]string
	for _, event := range report.Events {
		if event.Kind != organizer.EventPlaced {
			continue
		}
		version := ""
		if event.Version > 1 {
			version = fmt.Sprintf("v%d", event.Version)
		}
		rows = append(rows, []string{event.Archive, event.FinalPath, version, string(event.Source)})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"Archive", "Destination", "Version", "Source"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
		))
	}

	for _, event := range report.Events {
		switch event.Kind {
		case organizer.EventSkipped:
			fmt.Fprintf(out, "skipped %s: %s\n", event.Archive, event.Detail)
		case organizer.EventFailed:
			fmt.Fprintf(out, "failed %s: %s\n", event.Archive, event.Detail)
		case organizer.EventWarning:
			fmt.Fprintf(out, "warning %s: %s\n", event.Archive, event.Detail)
		}
	}

	label := "Run"
	if report.DryRun {
		label = "Plan"
	}
	fmt.Fprintf(out, "%s %s: %s\n", label, report.RunID, report.Summary())
}
