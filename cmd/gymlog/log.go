// ABOUTME: CLI command for logging an exercise with one or more sets.
// ABOUTME: Parses REPSxWEIGHT set specs and appends them as one batch.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/gymlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	logSets  []string
	logDate  string
	logUnit  string
	logNotes string
)

var logCmd = &cobra.Command{
	Use:     "log <exercise>",
	Aliases: []string{"add", "a"},
	Short:   "Log sets for an exercise",
	Long: `Log one exercise with one or more sets.

Each --set is REPSxWEIGHT. Sets are numbered in the order given.
Weight may be omitted for bodyweight work (--set 12 is 12 reps at 0).

LIMITS:

  1 to 12 sets, 0 to 100 reps, 0 to 1000 weight.

EXAMPLES:

  gymlog log "Bench Press" --set 8x50 --set 8x50
  gymlog log Squat -s 5x100 -s 5x100 -s 5x100 --unit lb
  gymlog log deadlift -s 3x140 --date 2024-01-10 --notes "belt"
  gymlog log pull-ups -s 10 -s 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := strings.Join(args, " ")

		sets := make([]models.SetInput, 0, len(logSets))
		for _, spec := range logSets {
			in, err := parseSet(spec)
			if err != nil {
				return err
			}
			sets = append(sets, in)
		}
		sets = models.NumberSets(sets)

		if err := models.ValidateSubmission(exercise, sets); err != nil {
			return err
		}

		unit := cfg.GetDefaultUnit()
		if logUnit != "" {
			if !models.IsValidUnit(logUnit) {
				return fmt.Errorf("unknown unit: %s (use kg or lb)", logUnit)
			}
			unit = models.Unit(logUnit)
		}

		date := models.Today()
		if logDate != "" {
			d, err := models.ParseDate(logDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", logDate)
			}
			date = d
		}

		batch, err := store.AddBatch(date, exercise, sets, unit, logNotes)
		if err != nil {
			return fmt.Errorf("failed to log sets: %w", err)
		}

		var volume float64
		for _, e := range batch {
			volume += e.Volume
		}

		color.Green("✓ Added %d sets for %s on %s", len(batch), batch[0].Exercise, date)
		faint := color.New(color.Faint)
		for _, e := range batch {
			fmt.Printf("  %s set %d  %d x %g %s\n", faint.Sprint(e.ShortID()), e.SetNum, e.Reps, e.Weight, e.Unit)
		}
		fmt.Printf("  volume %.2f %s\n", volume, unit)

		return nil
	},
}

// parseSet parses a set spec like "8x50", "8X52.5", or "12".
func parseSet(spec string) (models.SetInput, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" {
		return models.SetInput{}, fmt.Errorf("empty set")
	}

	repsStr, weightStr, hasWeight := strings.Cut(spec, "x")
	reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
	if err != nil {
		return models.SetInput{}, fmt.Errorf("invalid reps in set %q (use REPSxWEIGHT)", spec)
	}

	var weight float64
	if hasWeight {
		weight, err = strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil {
			return models.SetInput{}, fmt.Errorf("invalid weight in set %q (use REPSxWEIGHT)", spec)
		}
	}

	return models.SetInput{Reps: reps, Weight: weight}, nil
}

func init() {
	logCmd.Flags().StringArrayVarP(&logSets, "set", "s", nil, "set as REPSxWEIGHT (repeatable)")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "workout date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVarP(&logUnit, "unit", "u", "", "weight unit: kg or lb (default from config)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes for every set in the batch")
	rootCmd.AddCommand(logCmd)
}
