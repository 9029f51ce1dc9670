package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent placements from the game database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return fmt.Errorf("open game database: %w", err)
			}
			if store == nil {
				return fmt.Errorf("game database is not enabled; set gamedb.enabled in the configuration")
			}
			defer func() { _ = store.Close() }()

			placements, err := store.History(context.Background(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(placements) == 0 {
				fmt.Fprintln(out, "No placements recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(placements))
			for _, p := range placements {
				version := ""
				if p.Version > 1 {
					version = fmt.Sprintf("v%d", p.Version)
				}
				rows = append(rows, []string{
					p.CreatedAt.Local().Format(time.DateTime),
					p.GameKey,
					p.FinalPath,
					version,
					p.Source,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Archive", "Destination", "Version", "Source"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	return cmd
}
