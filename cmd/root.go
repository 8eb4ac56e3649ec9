package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/config"
	"github.com/liftvault/liftvault/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "liftvault",
	Short: "Workout record store with cloud sync",
}

func Execute() error {
	return rootCmd.Execute()
}

// openStore loads the config and opens the local record store. Almost every
// command starts here.
func openStore() (*storage.Storage, string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.User.ID == "" {
		return nil, "", fmt.Errorf("no user id configured (set [user] id in config.toml or LIFTVAULT_USER_ID)")
	}

	st, err := storage.NewStorage()
	if err != nil {
		return nil, "", err
	}
	return st, cfg.User.ID, nil
}

func printHeader(title string) {
	c := color.New(color.FgCyan, color.Bold)
	c.Printf("== %s ==\n", title)
}

func printMetric(label string, value any) {
	bold := color.New(color.Bold).Sprintf("%s:", label)
	fmt.Printf("  %s %v\n", bold, value)
}
