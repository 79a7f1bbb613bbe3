package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's challenge and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, challenge, err := svc.Challenge(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderChallenge(challenge))
			if res.XPGained > 0 {
				printResult(cmd, res)
			}
			return nil
		},
	}
	return cmd
}
