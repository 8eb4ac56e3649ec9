package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [workout-id]",
	Short: "Delete a workout and its progress entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		if err := st.DeleteWorkout(args[0], userID); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		fmt.Printf("✅ Workout %s deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
