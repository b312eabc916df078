// ABOUTME: CLI command for the weekly volume chart.
// ABOUTME: Zero-filled ISO weeks ending at the current week, optionally for one exercise.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/chart"
	"github.com/harperreed/gymlog/internal/config"
	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/spf13/cobra"
)

var (
	chartWeeks    int
	chartExercise string
	chartWidth    int
	chartTable    bool
)

var chartCmd = &cobra.Command{
	Use:     "chart",
	Aliases: []string{"weekly", "w"},
	Short:   "Chart total volume per week",
	Long: `Chart total volume (reps x weight) per ISO week for the most recent weeks.

Weeks with no sets are shown as zero. The window is clamped to 4..52 weeks.
The exercise name must match the logged spelling exactly, case included;
'gymlog exercises' lists the names.

EXAMPLES:

  gymlog chart                       # Default window, all exercises
  gymlog chart --weeks 26 -e Squat   # Half a year of squats
  gymlog chart --table               # Table instead of bars`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks := cfg.GetDefaultWeeks()
		if cmd.Flags().Changed("weeks") {
			weeks = config.ClampWeeks(chartWeeks)
		}

		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		if !knownExercise(entries, chartExercise) {
			color.Yellow("No sets logged for %s", chartExercise)
		}

		buckets := stats.WeeklySummary(entries, weeks, chartExercise, models.Today())

		title := chartExercise
		if title == "" {
			title = stats.AllExercises
		}
		color.New(color.Bold).Printf("Weekly volume: %s (last %d weeks)\n\n", title, weeks)

		if chartTable {
			fmt.Println(chart.WeeklyTable(buckets))
		} else {
			fmt.Print(chart.Bars(buckets, chartWidth))
		}
		fmt.Printf("\nTotal: %.2f\n", stats.TotalVolume(buckets))

		return nil
	},
}

// knownExercise reports whether name is empty, All, or a logged exercise.
func knownExercise(entries []models.SetEntry, name string) bool {
	if name == "" {
		return true
	}
	for _, choice := range stats.ExerciseChoices(entries) {
		if choice == name {
			return true
		}
	}
	return false
}

func init() {
	chartCmd.Flags().IntVarP(&chartWeeks, "weeks", "w", stats.DefaultWeeks, "number of weeks (4-52)")
	chartCmd.Flags().StringVarP(&chartExercise, "exercise", "e", stats.AllExercises, "exercise to chart, or All")
	chartCmd.Flags().IntVar(&chartWidth, "width", chart.DefaultWidth, "bar width in cells")
	chartCmd.Flags().BoolVar(&chartTable, "table", false, "render a table instead of bars")
	rootCmd.AddCommand(chartCmd)
}
