package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/models"
	"github.com/liftvault/liftvault/internal/utils"
)

var calendarDetails bool

// calendarCmd prints a month grid of training days. Logged days are colored by
// workout type, planned days that have not been logged yet are marked with a
// dot, and a legend maps colors to types.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		st, userID, err := openStore()
		if err != nil {
			return err
		}

		history, err := st.GetWorkoutHistory(userID)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		plans, err := st.GetPlannedWorkouts(userID)
		if err != nil {
			return fmt.Errorf("failed to load plans: %w", err)
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		workoutsByDay := make(map[int][]models.WorkoutRecord)
		typeSet := make(map[string]bool)
		for _, rec := range history {
			d := rec.Date.In(time.Local)
			if d.Year() != year || d.Month() != month {
				continue
			}
			workoutsByDay[d.Day()] = append(workoutsByDay[d.Day()], rec)
			typeSet[workoutType(rec)] = true
		}

		plannedDays := make(map[int]bool)
		for _, plan := range plans {
			d, err := time.ParseInLocation(utils.ISODate, plan.Date, time.Local)
			if err != nil || d.Year() != year || d.Month() != month {
				continue
			}
			plannedDays[d.Day()] = true
		}

		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		typeColors := make(map[string]func(a ...interface{}) string)
		types := make([]string, 0, len(typeSet))
		for t := range typeSet {
			types = append(types, t)
		}
		sort.Strings(types)
		for i, t := range types {
			typeColors[t] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if recs, logged := workoutsByDay[day]; logged {
				dayStr = typeColors[workoutType(recs[0])](dayStr + "*")
			} else if plannedDays[day] {
				dayStr = color.New(color.FgWhite).Sprint(dayStr + ".")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		if len(types) > 0 {
			fmt.Println("Legend:")
			for _, t := range types {
				fmt.Printf("  %s: %s\n", typeColors[t]("██"), t)
			}
		}

		if calendarDetails {
			fmt.Println("\nWorkouts:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, rec := range workoutsByDay[day] {
					fmt.Printf("  %s (%s)", rec.Title, workoutType(rec))
					if rec.Duration > 0 {
						fmt.Printf(", %d min", rec.Duration)
					}
					fmt.Println()
				}
			}
		}

		return nil
	},
}

func workoutType(rec models.WorkoutRecord) string {
	if rec.Type == "" {
		return models.WorkoutTypeStandalone
	}
	return rec.Type
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&calendarDetails, "details", "d", false, "Print workout details per day")
}
