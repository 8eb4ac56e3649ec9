package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate stats: totals, volume and current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		stats, err := st.GetUserStats(userID)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		printHeader("STATS")
		printMetric("Total workouts", stats.TotalWorkouts)
		printMetric("Total exercises", stats.TotalExercises)
		printMetric("Total volume", fmt.Sprintf("%.1f kg", stats.TotalVolume))
		printMetric("Current streak", fmt.Sprintf("%d days", stats.CurrentStreak))
		if !stats.LastWorkoutDate.IsZero() {
			printMetric("Last workout", stats.LastWorkoutDate.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
