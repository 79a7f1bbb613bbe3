package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lifetime stats and the activity heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Pet()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.RenderStats(p))

			if history := svc.History(); history != nil {
				// Events are logged and grouped in UTC days; render
				// the grid in the same calendar.
				now := time.Now().UTC()
				counts, err := history.CountByDay(ctx, now.AddDate(0, 0, -12*7))
				if err == nil {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.RenderHeatmap(counts, now))
				}

				weekXP, err := history.TotalXPSince(ctx, now.AddDate(0, 0, -7))
				if err == nil {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.LabelValue("XP this week", weekXP))
				}
			}
			return nil
		},
	}
	return cmd
}
