// ABOUTME: Export and import functionality for the workout log.
// ABOUTME: Supports CSV (the table format), JSON, YAML, and Markdown.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/gymlog/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// CSVContentType is the media type of a CSV export.
	CSVContentType = "text/csv"
	// DefaultExportFilename is the suggested file name for a CSV export.
	DefaultExportFilename = "workout_history.csv"
)

// ExportData represents the JSON export envelope.
type ExportData struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Tool       string            `json:"tool"`
	Entries    []models.SetEntry `json:"entries"`
}

// ExportCSV serializes entries in the backing-file format.
func ExportCSV(entries []models.SetEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseCSV reads entries from CSV bytes, coercing malformed cells.
func ParseCSV(data []byte) ([]models.SetEntry, error) {
	return ReadCSV(bytes.NewReader(data), nil)
}

// ExportJSON exports entries wrapped in an ExportData envelope.
func ExportJSON(entries []models.SetEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.SetEntry{}
	}
	return json.MarshalIndent(ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "gymlog",
		Entries:    entries,
	}, "", "  ")
}

// ParseJSON reads entries from a JSON export.
func ParseJSON(data []byte) ([]models.SetEntry, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return exportData.Entries, nil
}

type yamlEntry struct {
	ID       string  `yaml:"id"`
	Exercise string  `yaml:"exercise"`
	SetNum   int     `yaml:"set"`
	Reps     int     `yaml:"reps"`
	Weight   float64 `yaml:"weight"`
	Unit     string  `yaml:"unit"`
	Volume   float64 `yaml:"volume"`
	Notes    string  `yaml:"notes,omitempty"`
}

// ExportYAML exports entries grouped by workout date.
func ExportYAML(entries []models.SetEntry) ([]byte, error) {
	yamlData := struct {
		Version    string                 `yaml:"version"`
		ExportedAt string                 `yaml:"exported_at"`
		Tool       string                 `yaml:"tool"`
		Days       map[string][]yamlEntry `yaml:"days"`
	}{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "gymlog",
		Days:       make(map[string][]yamlEntry),
	}

	for _, e := range entries {
		day := e.Date.String()
		yamlData.Days[day] = append(yamlData.Days[day], yamlEntry{
			ID:       e.ShortID(),
			Exercise: e.Exercise,
			SetNum:   e.SetNum,
			Reps:     e.Reps,
			Weight:   e.Weight,
			Unit:     string(e.Unit),
			Volume:   e.Volume,
			Notes:    e.Notes,
		})
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports entries as one Markdown table per workout date,
// newest first. When since is non-nil, earlier dates are left out.
func ExportMarkdown(entries []models.SetEntry, since *models.Date) string {
	grouped := make(map[string][]models.SetEntry)
	for _, e := range entries {
		if since != nil && e.Date.Before(*since) {
			continue
		}
		day := e.Date.String()
		grouped[day] = append(grouped[day], e)
	}

	// Sort days for consistent output
	days := make([]string, 0, len(grouped))
	for d := range grouped {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Workout Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, day := range days {
		rows := grouped[day]
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Exercise != rows[j].Exercise {
				return rows[i].Exercise < rows[j].Exercise
			}
			return rows[i].SetNum < rows[j].SetNum
		})

		sb.WriteString(fmt.Sprintf("## %s\n\n", day))
		sb.WriteString("| Exercise | Set | Reps | Weight | Volume | Notes |\n")
		sb.WriteString("|----------|-----|------|--------|--------|-------|\n")
		for _, e := range rows {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %g %s | %.2f | %s |\n",
				markdownCell(e.Exercise), e.SetNum, e.Reps, e.Weight, e.Unit, e.Volume, markdownCell(e.Notes)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

var markdownCellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// markdownCell escapes pipes and flattens newlines so s stays inside one table cell.
func markdownCell(s string) string {
	return markdownCellReplacer.Replace(s)
}
