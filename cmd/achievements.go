package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/storage"
)

// achievementsCmd re-evaluates the catalog and lists every entry with its
// unlock state. Unlocks are monotonic: once earned, always shown.
var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and unlock any newly earned ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, userID, err := openStore()
		if err != nil {
			return err
		}

		fresh, err := st.CheckAndUnlockAchievements(userID)
		if err != nil {
			return fmt.Errorf("failed to evaluate achievements: %w", err)
		}
		for _, a := range fresh {
			color.New(color.FgYellow, color.Bold).Printf("🏆 Achievement unlocked: %s\n", a.Title)
		}

		unlocked, err := st.GetUnlockedAchievements(userID)
		if err != nil {
			return fmt.Errorf("failed to load achievements: %w", err)
		}
		have := map[string]bool{}
		for _, id := range unlocked {
			have[id] = true
		}

		printHeader("ACHIEVEMENTS")
		for _, a := range storage.Catalog {
			mark := "  "
			if have[a.ID] {
				mark = "🏆"
			}
			fmt.Printf("%s %s: %s\n", mark, a.Title, a.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
