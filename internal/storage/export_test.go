// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies CSV round trip plus JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/harperreed/gymlog/internal/models"
	"gopkg.in/yaml.v3"
)

func seedExportStore(t *testing.T) (*Store, []models.SetEntry) {
	t.Helper()
	store := setupTestStore(t)

	addTestBatch(t, store, models.NewDate(2024, 1, 10), "Squat",
		models.SetInput{SetNum: 1, Reps: 5, Weight: 100},
		models.SetInput{SetNum: 2, Reps: 5, Weight: 102.5},
	)
	if _, err := store.AddBatch(models.NewDate(2024, 1, 12), "Bench Press",
		[]models.SetInput{{SetNum: 1, Reps: 8, Weight: 50}}, models.UnitLb, "paused"); err != nil {
		t.Fatalf("AddBatch failed: %v", err)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store, entries
}

func TestExportCSVRoundTrip(t *testing.T) {
	_, entries := seedExportStore(t)

	data, err := ExportCSV(entries)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	// Load the export through a fresh store, as a user re-opening the file would.
	other := setupTestStore(t)
	parsed, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if err := other.Replace(parsed); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	reloaded, err := other.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(entries, reloaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCSVEmptyTable(t *testing.T) {
	data, err := ExportCSV(nil)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if string(data) != strings.Join(Columns, ",")+"\n" {
		t.Errorf("expected header only, got %q", data)
	}
}

func TestExportJSON(t *testing.T) {
	_, entries := seedExportStore(t)

	data, err := ExportJSON(entries)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if export.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", export.Version)
	}
	if export.Tool != "gymlog" {
		t.Errorf("Expected tool gymlog, got %s", export.Tool)
	}
	if len(export.Entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(export.Entries))
	}

	back, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if diff := cmp.Diff(entries, back); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestExportYAML(t *testing.T) {
	_, entries := seedExportStore(t)

	data, err := ExportYAML(entries)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var parsed struct {
		Tool string                              `yaml:"tool"`
		Days map[string][]map[string]interface{} `yaml:"days"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if parsed.Tool != "gymlog" {
		t.Errorf("Expected tool gymlog, got %s", parsed.Tool)
	}
	if len(parsed.Days["2024-01-10"]) != 2 {
		t.Errorf("Expected 2 sets on 2024-01-10, got %d", len(parsed.Days["2024-01-10"]))
	}
	if len(parsed.Days["2024-01-12"]) != 1 {
		t.Errorf("Expected 1 set on 2024-01-12, got %d", len(parsed.Days["2024-01-12"]))
	}
}

func TestExportMarkdown(t *testing.T) {
	_, entries := seedExportStore(t)

	md := ExportMarkdown(entries, nil)
	if !strings.Contains(md, "# Workout Export") {
		t.Error("Expected title in markdown")
	}
	newer := strings.Index(md, "## 2024-01-12")
	older := strings.Index(md, "## 2024-01-10")
	if newer < 0 || older < 0 || newer > older {
		t.Errorf("Expected newest date section first, got:\n%s", md)
	}
	if !strings.Contains(md, "| Bench Press | 1 | 8 | 50 lb | 400.00 | paused |") {
		t.Errorf("Expected bench press row, got:\n%s", md)
	}
}

func TestExportMarkdownSince(t *testing.T) {
	_, entries := seedExportStore(t)

	since := models.NewDate(2024, 1, 11)
	md := ExportMarkdown(entries, &since)
	if strings.Contains(md, "2024-01-10") {
		t.Error("Expected entries before --since to be excluded")
	}
	if !strings.Contains(md, "2024-01-12") {
		t.Error("Expected entries after --since to be included")
	}
}

func TestExportMarkdownEscapesCells(t *testing.T) {
	entries := []models.SetEntry{{
		ID:       "a1",
		Date:     models.NewDate(2024, 1, 10),
		Exercise: "Row | Cable",
		SetNum:   1,
		Reps:     10,
		Weight:   40,
		Unit:     models.UnitKg,
		Volume:   400,
		Notes:    "grip a|b\nslow",
	}}

	md := ExportMarkdown(entries, nil)
	want := `| Row \| Cable | 1 | 10 | 40 kg | 400.00 | grip a\|b slow |`
	if !strings.Contains(md, want) {
		t.Errorf("Expected escaped row %q, got:\n%s", want, md)
	}
}
