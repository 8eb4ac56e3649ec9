package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	DB   DBConfig   `toml:"database"`
	User UserConfig `toml:"user"`
	Sync SyncConfig `toml:"sync"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type UserConfig struct {
	ID string `toml:"id"`
}

type SyncConfig struct {
	ProjectID       string `toml:"project_id"`       // Firestore project.
	CredentialsFile string `toml:"credentials_file"` // Optional service account key path.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "liftvault")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file
func LoadConfig() (*Config, error) {
	// A .env next to the binary can carry DEV_MODE and LIFTVAULT_USER_ID.
	_ = godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	if id := os.Getenv("LIFTVAULT_USER_ID"); id != "" {
		cfg.User.ID = id
	}

	return &cfg, nil
}
