// ABOUTME: Weekly volume buckets keyed by ISO calendar week.
// ABOUTME: Always yields a fixed, zero-filled window of weeks ending at the current week.
package stats

import (
	"fmt"

	"github.com/harperreed/gymlog/internal/models"
)

// DefaultWeeks is the chart window used when none is configured.
const DefaultWeeks = 12

// WeekVolume is the summed volume of one ISO week.
type WeekVolume struct {
	Week   string  `json:"week"`
	Volume float64 `json:"volume"`
}

// WeekKey returns the ISO week bucket of d, e.g. "2024-W05".
func WeekKey(d models.Date) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeeklySummary sums volume per ISO week for the weeks buckets ending at
// now's week, oldest first. Weeks without entries report 0. Entries are
// restricted to exerciseFilter unless it is empty or AllExercises.
func WeeklySummary(entries []models.SetEntry, weeks int, exerciseFilter string, now models.Date) []WeekVolume {
	if weeks <= 0 {
		return []WeekVolume{}
	}

	totals := make(map[string]float64)
	for _, e := range FilterExercise(entries, exerciseFilter) {
		if e.Date.IsZero() {
			continue
		}
		totals[WeekKey(e.Date)] += e.Volume
	}

	result := make([]WeekVolume, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		key := WeekKey(now.AddDays(-7 * i))
		result = append(result, WeekVolume{Week: key, Volume: totals[key]})
	}
	return result
}

// TotalVolume sums the volume across buckets.
func TotalVolume(buckets []WeekVolume) float64 {
	var total float64
	for _, b := range buckets {
		total += b.Volume
	}
	return total
}
