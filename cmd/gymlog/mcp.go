// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/gymlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log and review your workouts through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "gymlog": {
        "command": "gymlog",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_sets         Log an exercise with one or more sets
  today_summary    Per-exercise totals for a day
  list_history     Logged sets, newest first
  delete_entries   Delete sets by ID or prefix
  weekly_summary   Total volume per ISO week
  list_exercises   Every exercise logged so far

AVAILABLE RESOURCES:

  gymlog://today     Today's per-exercise totals
  gymlog://history   Full history
  gymlog://weekly    Weekly volume, all exercises
  gymlog://export    Full history as CSV`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, mcp.Defaults{
			Unit:  cfg.GetDefaultUnit(),
			Weeks: cfg.GetDefaultWeeks(),
		}, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
