package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/engine"
	"gitbuddy/internal/gitrepo"
	"gitbuddy/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Scan the repo and show your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Scan(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			mood := engine.MoodFor(res.Pet.HP, 0)
			fmt.Fprintln(out, ui.RenderPet(res.Pet, mood))
			fmt.Fprintln(out, ui.RenderHealth(res.Health))

			if data := res.Health; data.IsRepo {
				if smells := markedComments(ctx, svc); smells > 0 {
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("  %s %d TODO/FIXME/debug markers in tracked files", ui.IconWarn, smells)))
				}
			}

			fmt.Fprintln(out, ui.RenderChallenge(res.Pet.DailyChallenge))
			printResult(cmd, &res.ActionResult)
			return nil
		},
	}
	return cmd
}

func markedComments(ctx context.Context, svc *engine.Service) int {
	return svc.Observer().FindMarkedComments(ctx, gitrepo.DefaultMarkers)
}
