package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "List achievements and what's still locked",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderAchievements(p))
			return nil
		},
	}
	return cmd
}
