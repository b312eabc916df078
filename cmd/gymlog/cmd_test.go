// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseSet, truncate, padRight, command flags, and a log/export round trip.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/harperreed/gymlog/internal/models"
	"github.com/harperreed/gymlog/internal/storage"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.SetInput
		wantErr bool
	}{
		{name: "reps and weight", input: "8x50", want: models.SetInput{Reps: 8, Weight: 50}},
		{name: "upper case X", input: "5X102.5", want: models.SetInput{Reps: 5, Weight: 102.5}},
		{name: "spaces", input: " 10 x 20 ", want: models.SetInput{Reps: 10, Weight: 20}},
		{name: "bodyweight", input: "12", want: models.SetInput{Reps: 12}},
		{name: "zero weight", input: "15x0", want: models.SetInput{Reps: 15}},
		{name: "empty", input: "", wantErr: true},
		{name: "bad reps", input: "eightx50", wantErr: true},
		{name: "bad weight", input: "8xheavy", wantErr: true},
		{name: "missing weight", input: "8x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseSet(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "shorter than max", input: "hello", maxLen: 10, want: "hello"},
		{name: "equal to max", input: "hello", maxLen: 5, want: "hello"},
		{name: "longer than max", input: "hello world", maxLen: 8, want: "hello..."},
		{name: "empty string", input: "", maxLen: 5, want: ""},
		{name: "multibyte fits by runes", input: "über", maxLen: 4, want: "über"},
		{name: "emoji cut on rune boundary", input: "💪 felt strong today", maxLen: 8, want: "💪 fel..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) returned invalid UTF-8: %q", tt.input, tt.maxLen, got)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{name: "pads short string", input: "abc", length: 6, want: "abc   "},
		{name: "exact length", input: "abcdef", length: 6, want: "abcdef"},
		{name: "longer than length", input: "abcdefgh", length: 6, want: "abcdefgh"},
		{name: "empty string", input: "", length: 3, want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "gymlog" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "gymlog")
	}
	for _, name := range []string{"file", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent --%s flag", name)
		}
	}
}

func TestLogCmdFlags(t *testing.T) {
	for _, name := range []string{"set", "date", "unit", "notes"} {
		if logCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on log command", name)
		}
	}
}

func TestHistoryCmdFlags(t *testing.T) {
	if historyCmd.Flags().Lookup("exercise") == nil {
		t.Error("Expected --exercise flag on history command")
	}
	limitFlag := historyCmd.Flags().Lookup("limit")
	if limitFlag == nil {
		t.Fatal("Expected --limit flag on history command")
	}
	if limitFlag.DefValue != "20" {
		t.Errorf("Expected default limit 20, got %s", limitFlag.DefValue)
	}
}

func TestChartCmdFlags(t *testing.T) {
	weeks := chartCmd.Flags().Lookup("weeks")
	if weeks == nil || weeks.DefValue != "12" {
		t.Errorf("Expected --weeks flag defaulting to 12, got %v", weeks)
	}
	exercise := chartCmd.Flags().Lookup("exercise")
	if exercise == nil || exercise.DefValue != "All" {
		t.Errorf("Expected --exercise flag defaulting to All, got %v", exercise)
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	expected := map[string]bool{"csv": false, "json": false, "yaml": false, "markdown": false}
	for _, arg := range exportCmd.ValidArgs {
		if _, ok := expected[arg]; ok {
			expected[arg] = true
		}
	}
	for arg, found := range expected {
		if !found {
			t.Errorf("Expected valid arg %q for exportCmd", arg)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"log", "today", "history", "delete", "chart", "exercises", "export", "import", "sync", "mcp", "config", "install-skill", "migrate"}

	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range want {
		if !names[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestSyncCmdSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range syncCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range []string{"link", "unlink", "status", "push", "pull", "wipe"} {
		if !names[name] {
			t.Errorf("Expected sync subcommand %q", name)
		}
	}
}

func TestNeedsStore(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "log", args: []string{"log"}, want: true},
		{name: "sync push", args: []string{"sync", "push"}, want: true},
		{name: "config show", args: []string{"config", "show"}, want: false},
		{name: "install-skill", args: []string{"install-skill"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find(tt.args)
			if err != nil {
				t.Fatalf("Find(%v) failed: %v", tt.args, err)
			}
			if got := needsStore(cmd); got != tt.want {
				t.Errorf("needsStore(%s) = %v, want %v", cmd.Name(), got, tt.want)
			}
		})
	}
}

func TestLogThenExportCSV(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	table := filepath.Join(tmpDir, "workouts.csv")
	out := filepath.Join(tmpDir, "history.csv")

	rootCmd.SetArgs([]string{"--file", table, "log", "Bench", "Press", "--set", "8x50", "--set", "6x55", "--date", "2024-01-15"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log failed: %v", err)
	}

	s, err := storage.Open(table)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(entries))
	}
	if entries[0].Exercise != "Bench Press" || entries[0].Volume != 400 || entries[1].Volume != 330 {
		t.Errorf("unexpected rows: %+v", entries)
	}
	if entries[1].SetNum != 2 {
		t.Errorf("second set numbered %d, want 2", entries[1].SetNum)
	}

	rootCmd.SetArgs([]string{"--file", table, "export", "csv", "-o", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("expected header plus 2 rows, got %d lines", len(lines))
	}
}

func TestKnownExercise(t *testing.T) {
	entries := []models.SetEntry{
		{ID: "a", Exercise: "Bench Press"},
		{ID: "b", Exercise: "Squat"},
	}

	tests := []struct {
		name string
		want bool
	}{
		{name: "", want: true},
		{name: "All", want: true},
		{name: "Squat", want: true},
		{name: "squat", want: false},
		{name: "Bench Press", want: true},
		{name: "Deadlift", want: false},
	}

	for _, tt := range tests {
		if got := knownExercise(entries, tt.name); got != tt.want {
			t.Errorf("knownExercise(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
