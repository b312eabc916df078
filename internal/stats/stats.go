// ABOUTME: Read-only aggregations over the workout table.
// ABOUTME: Today's per-exercise rollup, display-ordered history, and distinct exercises.
package stats

import (
	"math"
	"sort"

	"github.com/harperreed/gymlog/internal/models"
)

// AllExercises is the filter value that disables exercise filtering.
const AllExercises = "All"

// ExerciseSummary is one exercise's rollup for a single day.
type ExerciseSummary struct {
	Exercise    string  `json:"exercise"`
	Sets        int     `json:"sets"`
	TotalReps   int     `json:"total_reps"`
	TotalVolume float64 `json:"total_volume"`
}

// TodaySummary groups the entries dated today by exercise. Groups are
// ordered by exercise name; volume is rounded to 2 decimal places.
func TodaySummary(entries []models.SetEntry, today models.Date) []ExerciseSummary {
	byExercise := make(map[string]*ExerciseSummary)
	for _, e := range entries {
		if !e.Date.Equal(today) {
			continue
		}
		sum, ok := byExercise[e.Exercise]
		if !ok {
			sum = &ExerciseSummary{Exercise: e.Exercise}
			byExercise[e.Exercise] = sum
		}
		sum.Sets++
		sum.TotalReps += e.Reps
		sum.TotalVolume += e.Volume
	}

	result := make([]ExerciseSummary, 0, len(byExercise))
	for _, sum := range byExercise {
		sum.TotalVolume = round2(sum.TotalVolume)
		result = append(result, *sum)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Exercise < result[j].Exercise
	})
	return result
}

// FullHistory returns a sorted copy: date descending, then exercise and
// set number ascending. Ties keep their table order.
func FullHistory(entries []models.SetEntry) []models.SetEntry {
	sorted := make([]models.SetEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c > 0
		}
		if a.Exercise != b.Exercise {
			return a.Exercise < b.Exercise
		}
		return a.SetNum < b.SetNum
	})
	return sorted
}

// FilterExercise keeps entries whose exercise matches exactly, case included,
// so it agrees with the groups TodaySummary and Exercises build.
// An empty name or AllExercises returns entries unchanged.
func FilterExercise(entries []models.SetEntry, exercise string) []models.SetEntry {
	if exercise == "" || exercise == AllExercises {
		return entries
	}
	var out []models.SetEntry
	for _, e := range entries {
		if e.Exercise == exercise {
			out = append(out, e)
		}
	}
	return out
}

// Exercises returns the distinct, non-empty exercise names, sorted.
func Exercises(entries []models.SetEntry) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.Exercise == "" || seen[e.Exercise] {
			continue
		}
		seen[e.Exercise] = true
		names = append(names, e.Exercise)
	}
	sort.Strings(names)
	return names
}

// ExerciseChoices is AllExercises followed by Exercises(entries).
func ExerciseChoices(entries []models.SetEntry) []string {
	return append([]string{AllExercises}, Exercises(entries)...)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
