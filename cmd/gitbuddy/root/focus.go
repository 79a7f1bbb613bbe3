package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"gitbuddy/internal/tui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus [minutes]",
		Short: "Run a focus session (default 25 minutes)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one argument: minutes")
			}
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return errors.New("minutes must be a positive integer")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			minutes := 25
			if len(args) == 1 {
				minutes, _ = strconv.Atoi(args[0])
			}

			return tui.RunFocus(ctx, svc, cmd.OutOrStdout(), minutes)
		},
	}
	return cmd
}
