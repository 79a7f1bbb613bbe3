package root

import (
	"context"

	"github.com/spf13/cobra"

	"gitbuddy/internal/tui"
)

func newPetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Open the interactive pet screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunPet(ctx, svc, cmd.OutOrStdout())
		},
	}
	return cmd
}
