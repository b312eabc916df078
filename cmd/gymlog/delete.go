// ABOUTME: CLI command for deleting logged sets.
// ABOUTME: Accepts full IDs, unique ID prefixes, or history labels.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/models"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"del", "rm"},
	Short:   "Delete logged sets",
	Long: `Delete one or more logged sets by ID or ID prefix.

The ID prefix is shown in the first column of 'gymlog history' output.
A full label from 'gymlog history --labels' also works.

EXAMPLES:

  gymlog delete 3f2a9c1e              # Delete by 8-char prefix
  gymlog delete 3f2a9c1e 77b0d4aa     # Delete several sets
  gymlog rm 3f2a                      # Short prefix (if unique)

CAUTION:

  This permanently deletes the sets. There is no undo.
  If a prefix matches multiple sets, nothing is deleted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refs := make([]string, 0, len(args))
		for _, arg := range args {
			refs = append(refs, models.IDFromLabel(arg))
		}

		ids, err := store.ResolveIDs(refs)
		if err != nil {
			return err
		}

		removed, err := store.DeleteByIDs(ids)
		if err != nil {
			return fmt.Errorf("failed to delete sets: %w", err)
		}

		color.Yellow("✗ Deleted %d rows.", removed)
		faint := color.New(color.Faint)
		for _, id := range ids {
			fmt.Printf("  %s\n", faint.Sprint(id))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
