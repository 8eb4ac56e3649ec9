package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/utils"
)

// logCmd saves a completed workout from a TOML file and reports any
// achievements the save unlocked.
var logCmd = &cobra.Command{
	Use:   "log [workout-file]",
	Short: "Log a completed workout from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		parsed, err := utils.ParseWorkoutFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse workout file: %w", err)
		}

		rec, setsByExercise := utils.WorkoutFromTOML(parsed)
		workoutID, err := st.SaveWorkout(rec, setsByExercise, userID)
		if err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}
		fmt.Printf("✅ Workout saved: %s\n", workoutID)

		unlocked, err := st.CheckAndUnlockAchievements(userID)
		if err != nil {
			return fmt.Errorf("failed to evaluate achievements: %w", err)
		}
		for _, a := range unlocked {
			color.New(color.FgYellow, color.Bold).Printf("🏆 Achievement unlocked: %s (%s)\n", a.Title, a.Description)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
