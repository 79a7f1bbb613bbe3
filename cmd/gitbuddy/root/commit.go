package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit [message]",
		Short: "Smart-commit the staged changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			extra := message
			if extra == "" && len(args) > 0 {
				extra = strings.Join(args, " ")
			}

			res, err := svc.SmartCommit(ctx, extra)
			if err != nil {
				return petError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Committed %d file(s): %s\n", ui.IconSparkle, res.FilesChanged, ui.H2.Render(res.Message))
			printResult(cmd, &res.ActionResult)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (otherwise generated from the diff)")
	return cmd
}
