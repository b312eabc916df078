// ABOUTME: CLI command for today's per-exercise totals.
// ABOUTME: Renders set count, reps, and volume per exercise as a table.
package main

import (
	"fmt"

	"github.com/harperreed/gymlog/internal/chart"
	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's totals per exercise",
	Long: `Show set count, total reps, and total volume for each exercise logged today.

EXAMPLES:

  gymlog today                    # Today
  gymlog today --date 2024-01-10  # Another day`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := models.Today()
		if todayDate != "" {
			d, err := models.ParseDate(todayDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", todayDate)
			}
			date = d
		}

		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		summary := stats.TodaySummary(entries, date)
		if len(summary) == 0 {
			fmt.Println("No entries for today yet.")
			return nil
		}

		fmt.Println(chart.TodayTable(summary))
		return nil
	},
}

func init() {
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "day to summarize (YYYY-MM-DD)")
	rootCmd.AddCommand(todayCmd)
}
