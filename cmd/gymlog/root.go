// ABOUTME: Root Cobra command for gymlog CLI.
// ABOUTME: Loads config, builds the logger, and opens the CSV store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/gymlog/internal/config"
	"github.com/harperreed/gymlog/internal/logging"
	"github.com/harperreed/gymlog/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	store  *storage.Store
	logger *zap.Logger

	rootFile    string
	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gymlog",
	Short: "Personal workout logger",
	Long: `Gymlog is a CLI tool for logging strength workouts set by set.

Every set is one row in a plain CSV file, with volume (reps x weight)
computed when you log it.

QUICK START:

  $ gymlog log "Bench Press" --set 8x50 --set 8x50   # Log two sets
  $ gymlog today                                      # Today's totals
  $ gymlog history -e Squat                           # Past squat sets
  $ gymlog chart --weeks 8                            # Weekly volume
  $ gymlog delete 3f2a9c1e                            # Remove a set

EXPORT:

  $ gymlog export                  # Writes workout_history.csv
  $ gymlog export json -o -        # JSON to stdout
  $ gymlog import backup.csv       # Merge rows from another table

SYNC:

  Back up the table to Charm Cloud, E2E encrypted with your SSH key.

  $ gymlog sync link      # Link device to your Charm account
  $ gymlog sync push      # Upload the current table
  $ gymlog sync pull      # Replace the local table with the backup

MCP INTEGRATION:

  Run 'gymlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "gymlog": { "command": "gymlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Sets are stored in ~/.local/share/gymlog/workouts.csv by default.
  Use --file or 'gymlog config set data_dir <dir>' to change it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(rootVerbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		if !needsStore(cmd) {
			return nil
		}

		if rootFile != "" {
			store, err = storage.Open(config.ExpandPath(rootFile), storage.WithLogger(logger))
		} else {
			store, err = cfg.OpenStorage(logger)
		}
		if err != nil {
			return fmt.Errorf("failed to open workout table: %w", err)
		}
		logger.Debug("opened workout table", zap.String("path", store.Path()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// needsStore reports whether cmd reads or writes the workout table.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "config", "install-skill", "completion":
			return false
		}
	}
	return true
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "workout table CSV (default: <data_dir>/workouts.csv)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "debug logging to stderr")
}
