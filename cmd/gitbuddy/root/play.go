package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play with your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Play(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s chases a stray semicolon around the terminal!\n", ui.IconPaw, res.Pet.Name)
			printResult(cmd, res)
			return nil
		},
	}
	return cmd
}
