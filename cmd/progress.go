package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/utils"
)

// progressCmd resolves an exercise name (fuzzy, equipment qualifiers and all)
// and shows its logged progress plus the sets of the last workout.
var progressCmd = &cobra.Command{
	Use:   "progress [exercise-name]",
	Short: "Show logged progress for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		record, err := st.GetExerciseProgress(userID, args[0])
		if err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}
		if record == nil {
			fmt.Printf("No progress logged for %q yet.\n", args[0])
			return nil
		}

		printHeader(record.Exercise)
		var best float64
		for _, entry := range record.Entries {
			fmt.Printf("%s  %.1f kg x %d (vol %.0f)\n",
				entry.Date.Format("2006-01-02"), entry.Weight, entry.Reps, entry.Volume)
			if est := utils.Epley1RM(entry.Weight, entry.Reps); est > best {
				best = est
			}
		}
		if best > 0 {
			fmt.Printf("\nEstimated 1RM: %.1f kg\n", best)
		}

		lastSets, err := st.GetLastExerciseSets(userID, args[0])
		if err != nil {
			return fmt.Errorf("failed to load last sets: %w", err)
		}
		if len(lastSets) > 0 {
			fmt.Println()
			color.New(color.FgGreen, color.Bold).Println("Last workout:")
			for i, set := range lastSets {
				fmt.Printf("  Set %d: %.1f kg x %d\n", i+1, set.Weight, set.Reps)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
