package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitbuddy/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gitbuddy",
	Short:         "Gitbuddy: a virtual pet that lives in your git repo",
	Long:          "Gitbuddy is a terminal pet whose health tracks your repository's health.\nFeed it staged changes, keep your streak alive, and watch it evolve.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPetCmd(),
		newStatusCmd(),
		newFeedCmd(),
		newPlayCmd(),
		newCommitCmd(),
		newFocusCmd(),
		newStatsCmd(),
		newAchievementsCmd(),
		newChallengeCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
