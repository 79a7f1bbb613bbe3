package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete your pet and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("this deletes your pet permanently; re-run with --force if you mean it")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			existed, err := svc.Reset()
			if err != nil {
				return err
			}
			if !existed {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No pet to reset."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Your pet has moved on. A new one will hatch on the next run."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation")
	return cmd
}
