// ABOUTME: CLI command for listing logged sets.
// ABOUTME: Newest date first, optionally filtered by exercise.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/stats"
	"github.com/spf13/cobra"
)

var (
	historyExercise string
	historyLimit    int
	historyLabels   bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls", "l"},
	Short:   "List logged sets",
	Long: `List logged sets, newest date first. Within a day, sets are grouped by
exercise and ordered by set number.

OUTPUT FORMAT:

  Each line shows: ID  DATE  EXERCISE  SET  REPS x WEIGHT  VOLUME  (NOTES)

  The ID is an 8-character prefix you can use with 'gymlog delete'.

EXAMPLES:

  gymlog history                 # Last 20 sets
  gymlog history -e Squat        # Only Squat (exact name)
  gymlog history -n 0            # Everything
  gymlog history --labels        # One-line labels with the full id`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		history := stats.FullHistory(stats.FilterExercise(entries, historyExercise))
		if len(history) == 0 {
			fmt.Println("No sets found.")
			return nil
		}
		if historyLimit > 0 && len(history) > historyLimit {
			history = history[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, e := range history {
			if historyLabels {
				fmt.Println(e.Label())
				continue
			}
			notes := ""
			if e.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(e.Notes, 30))
			}
			fmt.Printf("%s %s %s set %-2d %3d x %-8s %s%s\n",
				faint.Sprint(e.ShortID()),
				faint.Sprint(e.Date),
				padRight(e.Exercise, 20),
				e.SetNum,
				e.Reps,
				fmt.Sprintf("%g%s", e.Weight, e.Unit),
				faint.Sprintf("vol %.2f", e.Volume),
				notes)
		}

		return nil
	},
}

// truncate shortens s to maxLen runes, ending with "..." when cut.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	historyCmd.Flags().StringVarP(&historyExercise, "exercise", "e", "", "filter by exercise")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of sets (0 for all)")
	historyCmd.Flags().BoolVar(&historyLabels, "labels", false, "print one label per set, ending with the full id")
	rootCmd.AddCommand(historyCmd)
}
