package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var filterDay string

// historyCmd lists workout history, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display workout history, optionally filtered by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		history, err := st.GetWorkoutHistory(userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve workout history: %w", err)
		}

		if filterDay != "" {
			parsedDay, err := time.Parse("2006-01-02", filterDay)
			if err != nil {
				return fmt.Errorf("failed to parse day: %w", err)
			}
			var filtered = history[:0]
			for _, rec := range history {
				if rec.Date.Format("2006-01-02") == parsedDay.Format("2006-01-02") {
					filtered = append(filtered, rec)
				}
			}
			history = filtered
		}

		if len(history) == 0 {
			fmt.Println("No workouts logged yet.")
			return nil
		}

		printHeader("HISTORY")
		for _, rec := range history {
			duration := ""
			if rec.Duration > 0 {
				duration = fmt.Sprintf(" | %d min", rec.Duration)
			}
			fmt.Printf("%s  %s [%s]%s\n", rec.Date.Format("2006-01-02"), rec.Title, rec.Type, duration)
			for _, ex := range rec.Exercises {
				fmt.Printf("    %s (%d sets)\n", ex.Name, len(ex.Sets))
			}
			fmt.Printf("    id: %s", rec.ID)
			if rec.Synced {
				fmt.Printf(" | synced")
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07)")
}
