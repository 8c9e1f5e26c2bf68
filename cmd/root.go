package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bilingui/skillrings/internal/app"
	"github.com/bilingui/skillrings/internal/profile"
	"github.com/bilingui/skillrings/internal/stats"
)

var rootCmd = &cobra.Command{
	Use:   "skillrings",
	Short: "Language skill rings in your terminal",
	Long:  "SkillRings — a terminal dashboard that tracks language-learning XP, levels, and streaks as concentric skill rings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := resolveStats(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Store: stats.NewStore(st)})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "Path to a learner profile JSON file (defaults to a built-in sample)")

	rootCmd.AddCommand(awardCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveStats loads the learner snapshot from --profile when given,
// otherwise falls back to the built-in sample profile.
func resolveStats(cmd *cobra.Command) (stats.Stats, error) {
	path, _ := cmd.Flags().GetString("profile")
	if path == "" {
		return stats.Sample(), nil
	}
	st, err := profile.Load(path)
	if err != nil {
		return stats.Stats{}, fmt.Errorf("load profile: %w", err)
	}
	return st, nil
}
