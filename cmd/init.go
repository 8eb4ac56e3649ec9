package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/config"
)

const configTemplate = `[database]
connection_string = "file:./liftvault.db?cache=shared&mode=rwc"

[user]
id = ""

[sync]
project_id = ""
credentials_file = ""
`

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file scaffold at ~/.config/liftvault/config.toml",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("✅ Config created at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
