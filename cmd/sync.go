package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liftvault/liftvault/internal/config"
	"github.com/liftvault/liftvault/internal/storage"
	"github.com/liftvault/liftvault/internal/syncengine"
)

// Sync is explicit: there is no background scheduler. Push uploads unsynced
// workouts, pull merges the remote copy back with cloud-wins semantics.

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload unsynced workouts to the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeFn, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := engine.Push(cmd.Context())
		if err != nil {
			return fmt.Errorf("push failed (check your connection and try again): %w", err)
		}

		fmt.Printf("✅ Pushed %d workout(s), %d already synced, %d failed\n",
			result.Pushed, result.Skipped, result.Failed)
		return nil
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download cloud workouts and merge them into local history (cloud wins)",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, closeFn, err := buildEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		result, err := engine.Pull(cmd.Context())
		if err != nil {
			return fmt.Errorf("pull failed (check your connection and try again): %w", err)
		}

		fmt.Printf("✅ Downloaded %d workout(s), local history now holds %d\n",
			result.Downloaded, result.Merged)
		return nil
	},
}

func buildEngine(ctx context.Context) (*syncengine.Engine, func() error, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Sync.ProjectID == "" {
		return nil, nil, fmt.Errorf("no sync project configured (set [sync] project_id in config.toml)")
	}

	st, err := storage.NewStorage()
	if err != nil {
		return nil, nil, err
	}

	remote, err := syncengine.NewFirestoreStore(ctx, cfg.Sync.ProjectID, cfg.Sync.CredentialsFile)
	if err != nil {
		return nil, nil, err
	}

	return syncengine.New(st, remote, cfg.User.ID), remote.Close, nil
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
}
