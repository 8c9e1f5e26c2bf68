package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bilingui/skillrings/internal/progression"
)

var awardCmd = &cobra.Command{
	Use:   "award <amount>",
	Short: "Award XP to the learner and print the outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be an integer: %q", args[0])
		}

		st, err := resolveStats(cmd)
		if err != nil {
			return err
		}

		receipt, err := progression.Apply(st, amount)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "+%d XP  (receipt %s)\n", receipt.Amount, receipt.ID)
		fmt.Fprintf(out, "Level %d  %d/%d XP", receipt.After.Level, receipt.After.CurrentXP, receipt.After.MaxXP)
		if receipt.LeveledUp {
			fmt.Fprintf(out, "  ⬆ leveled up from %d — %s", receipt.Before.Level, progression.TierName(receipt.After.Level))
		}
		fmt.Fprintln(out)
		for _, a := range receipt.Achievements {
			fmt.Fprintf(out, "🏆 %s — %s (+%d XP)\n", a.Name, a.Message, a.XPReward)
		}
		if st.Streak > 0 {
			fmt.Fprintf(out, "🔥 %d day streak (×%.1f bonus), next milestone at %d\n",
				st.Streak, receipt.Multiplier, progression.NextStreakMilestone(st.Streak))
		}
		return nil
	},
}
