// ABOUTME: CLI command for moving the workout table to a new data directory.
// ABOUTME: Copies every row, keeping ids, then points data_dir at the new location.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/config"
	"github.com/harperreed/gymlog/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <data-dir>",
	Short: "Move the workout table to another directory",
	Long: `Copy the workout table into another data directory and make it the default.

Rows already present in the destination (same ID) are skipped, so this is
safe to run against a directory that already holds a partial copy.
The source table is left in place.

USAGE:

  gymlog migrate ~/Dropbox/gym --dry-run   # Preview what would be copied
  gymlog migrate ~/Dropbox/gym             # Copy and update data_dir`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.ExpandPath(args[0])
		dst := filepath.Join(dir, storage.TableFileName)
		if dst == store.Path() {
			return fmt.Errorf("table is already at %s", dst)
		}

		if migrateDryRun {
			entries, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to load entries: %w", err)
			}
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("Would copy %d sets\n  from %s\n  to   %s\n", len(entries), store.Path(), dst)
			return nil
		}

		dstStore, err := storage.Open(dst, storage.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer func() { _ = dstStore.Close() }()

		summary, err := storage.MigrateData(store, dstStore)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		cfg.DataDir = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Copied %d sets to %s", summary.Rows, dst)
		if summary.Skipped > 0 {
			fmt.Printf("  %d already present\n", summary.Skipped)
		}
		fmt.Printf("  data_dir is now %s\n", args[0])
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
