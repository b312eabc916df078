// ABOUTME: CLI command for listing logged exercise names.
package main

import (
	"fmt"

	"github.com/harperreed/gymlog/internal/stats"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List every exercise that has been logged",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		names := stats.Exercises(entries)
		if len(names) == 0 {
			fmt.Println("No exercises logged yet.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exercisesCmd)
}
