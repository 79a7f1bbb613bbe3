package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitbuddy/internal/engine"
	"gitbuddy/internal/ui"
)

// printResult renders the shared tail of every action: XP, level-ups,
// fresh achievements and a completed challenge.
func printResult(cmd *cobra.Command, res *engine.ActionResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s +%d XP\n", ui.IconBolt, res.XPGained)
	if res.LeveledUp {
		fmt.Fprintf(out, "%s %s %s is now level %d!\n", ui.IconSparkle, ui.BadgeLevelUp, res.Pet.Name, res.Pet.Level)
	}
	if banner := ui.RenderNewAchievements(res.NewAchievements); banner != "" {
		fmt.Fprintln(out, banner)
	}
	if res.ChallengeDone != nil {
		fmt.Fprintf(out, "%s Challenge complete: %s (+%d XP)\n", ui.IconTarget, res.ChallengeDone.Name, res.ChallengeDone.XPReward)
	}
}

// petError converts expected engine errors into the pet's own words;
// anything else passes through.
func petError(err error) error {
	if err == nil {
		return nil
	}
	if line := engine.PetSpeak(err); line != "" {
		return errors.New(line)
	}
	return err
}
