package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/engine"
	"gitbuddy/internal/ui"
)

func newFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Feed your pet the staged changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Feed(ctx)
			if err != nil {
				return petError(err)
			}

			mood := engine.MoodFor(res.Pet.HP, 0)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s happily munches on your staged changes! (%s)\n",
				ui.IconFood, res.Pet.Name, ui.MoodText(mood))
			printResult(cmd, res)
			return nil
		},
	}
	return cmd
}
