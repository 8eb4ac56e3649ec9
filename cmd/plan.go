package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

var planDate string

// planCmd stores a planned workout for a calendar date. One plan per date;
// planning again for the same date overwrites.
var planCmd = &cobra.Command{
	Use:   "plan [workout-file]",
	Short: "Plan a workout for a date (overwrites any existing plan for that date)",
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
		for i := range rec.Exercises {
			if i < len(setsByExercise) {
				rec.Exercises[i].Sets = setsByExercise[i]
			}
		}

		date := planDate
		if date == "" && !rec.Date.IsZero() {
			date = utils.DayKey(rec.Date)
		}

		plan := models.PlannedWorkout{
			Date:      date,
			Title:     rec.Title,
			Exercises: rec.Exercises,
		}
		if err := st.SavePlannedWorkout(userID, plan); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}
		fmt.Printf("✅ Workout planned for %s\n", plan.Date)
		return nil
	},
}

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List planned workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		plans, err := st.GetPlannedWorkouts(userID)
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No planned workouts.")
			return nil
		}

		printHeader("PLANNED WORKOUTS")
		for _, plan := range plans {
			fmt.Printf("%s  %s (%d exercises)\n", plan.Date, plan.Title, len(plan.Exercises))
		}
		return nil
	},
}

var deletePlanCmd = &cobra.Command{
	Use:   "delete-plan [date]",
	Short: "Delete the planned workout for a date (history is never touched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		if err := st.DeletePlannedWorkout(userID, args[0]); err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		fmt.Printf("✅ Plan for %s deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(deletePlanCmd)
	planCmd.Flags().StringVarP(&planDate, "date", "d", "", "Plan date (YYYY-MM-DD); defaults to the file's date")
}
