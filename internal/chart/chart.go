// ABOUTME: Terminal rendering for weekly volume bars and summary tables.
// ABOUTME: Uses lipgloss for styling; output degrades to plain text without a color terminal.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/harperreed/gymlog/internal/stats"
)

const (
	barRune      = "█"
	DefaultWidth = 40
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	headStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// Bars renders one horizontal bar per bucket, scaled so the largest volume
// spans width cells. Every bucket gets a line, including zero weeks.
func Bars(buckets []stats.WeekVolume, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	maxVolume := 0.0
	for _, b := range buckets {
		maxVolume = math.Max(maxVolume, b.Volume)
	}

	var sb strings.Builder
	for _, b := range buckets {
		n := 0
		if maxVolume > 0 && b.Volume > 0 {
			n = min(int(math.Round(b.Volume/maxVolume*float64(width))), width)
		}
		bar := strings.Repeat(barRune, n) + strings.Repeat(" ", width-n)
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(b.Week),
			barStyle.Render(bar),
			valueStyle.Render(fmt.Sprintf("%.2f", b.Volume))))
	}
	return sb.String()
}

// Table renders rows under headers with a rounded border.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		})
	return t.String()
}

// WeeklyTable renders the buckets as a Week / Total Volume table.
func WeeklyTable(buckets []stats.WeekVolume) string {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.Week, fmt.Sprintf("%.2f", b.Volume)})
	}
	return Table([]string{"Week", "Total Volume"}, rows)
}

// TodayTable renders the per-exercise summary for one day.
func TodayTable(summary []stats.ExerciseSummary) string {
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			s.Exercise,
			fmt.Sprintf("%d", s.Sets),
			fmt.Sprintf("%d", s.TotalReps),
			fmt.Sprintf("%.2f", s.TotalVolume),
		})
	}
	return Table([]string{"Exercise", "Sets", "Total Reps", "Total Volume"}, rows)
}
