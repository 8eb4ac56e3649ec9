package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/models"
)

var goalExercise string

var addGoalCmd = &cobra.Command{
	Use:   "goal-add [type] [target]",
	Short: "Add a goal (types: weight, reps, volume, frequency, monthly_workouts, consistency)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("failed to parse target: %w", err)
		}

		goal, err := st.CreateGoal(userID, models.Goal{
			Type:         args[0],
			Target:       target,
			ExerciseName: goalExercise,
		})
		if err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
		fmt.Printf("✅ Goal created: %s\n", goal.ID)
		return nil
	},
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List goals with recomputed progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		goals, err := st.GetGoals(userID)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		if len(goals) == 0 {
			fmt.Println("No goals set.")
			return nil
		}

		printHeader("GOALS")
		for _, goal := range goals {
			label := goal.Type
			if goal.ExerciseName != "" {
				label = fmt.Sprintf("%s (%s)", goal.Type, goal.ExerciseName)
			}
			line := fmt.Sprintf("%s  %.1f / %.1f [%s]  %s", label, goal.CurrentProgress, goal.Target, goal.Status, goal.ID)
			if goal.Status == models.GoalStatusCompleted {
				color.Green(line)
			} else {
				fmt.Println(line)
			}
		}
		return nil
	},
}

var pauseGoalCmd = &cobra.Command{
	Use:   "goal-pause [goal-id]",
	Short: "Pause a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setGoalStatus(args[0], models.GoalStatusPaused) },
}

var resumeGoalCmd = &cobra.Command{
	Use:   "goal-resume [goal-id]",
	Short: "Resume a paused goal",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setGoalStatus(args[0], models.GoalStatusActive) },
}

var deleteGoalCmd = &cobra.Command{
	Use:   "goal-delete [goal-id]",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}
		if err := st.DeleteGoal(userID, args[0]); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		fmt.Printf("✅ Goal %s deleted\n", args[0])
		return nil
	},
}

func setGoalStatus(goalID, status string) error {
	st, userID, err := openStore()
	if err != nil {
		return err
	}
	if err := st.UpdateGoalStatus(userID, goalID, status); err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	fmt.Printf("✅ Goal %s is now %s\n", goalID, status)
	return nil
}

func init() {
	rootCmd.AddCommand(addGoalCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(pauseGoalCmd)
	rootCmd.AddCommand(resumeGoalCmd)
	rootCmd.AddCommand(deleteGoalCmd)
	addGoalCmd.Flags().StringVarP(&goalExercise, "exercise", "e", "", "Exercise name (required for weight/reps goals)")
}
