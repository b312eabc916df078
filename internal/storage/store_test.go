// ABOUTME: Tests for Store file lifecycle and the table cache.
// ABOUTME: Verifies lazy creation, memoized loads, and invalidation on save.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/harperreed/gymlog/internal/models"
)

// setupTestStore creates a Store in a temp directory with a fixed clock.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", TableFileName)
	clock := func() time.Time { return time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC) }

	store, err := Open(path, WithClock(clock))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenCreatesHeaderOnlyTable(t *testing.T) {
	store := setupTestStore(t)

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("table file not created: %v", err)
	}

	want := "id,timestamp,date,exercise,set_num,reps,weight,unit,notes,volume\n"
	if string(data) != want {
		t.Errorf("header = %q, want %q", data, want)
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected zero rows, got %d", len(entries))
	}
}

func TestEnsureTableExistsIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.AddBatch(models.NewDate(2024, 1, 15), "Squat",
		[]models.SetInput{{SetNum: 1, Reps: 5, Weight: 100}}, models.UnitKg, ""); err != nil {
		t.Fatalf("AddBatch failed: %v", err)
	}

	if err := store.EnsureTableExists(); err != nil {
		t.Fatalf("EnsureTableExists failed: %v", err)
	}

	data, _ := os.ReadFile(store.Path())
	if lines := strings.Count(string(data), "\n"); lines != 2 {
		t.Errorf("expected header plus one row, got %d lines", lines)
	}
}

func TestLoadRecreatesDeletedFile(t *testing.T) {
	store := setupTestStore(t)

	if err := os.Remove(store.Path()); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	store.cache.Invalidate()

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty table, got %d", len(entries))
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Errorf("expected table to be recreated: %v", err)
	}
}

func TestLoadIsMemoized(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.AddBatch(models.NewDate(2024, 1, 15), "Bench Press",
		[]models.SetInput{{SetNum: 1, Reps: 8, Weight: 50}}, models.UnitKg, ""); err != nil {
		t.Fatalf("AddBatch failed: %v", err)
	}

	first, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// An out-of-band edit is invisible until the next Save.
	if err := os.WriteFile(store.Path(), []byte(strings.Join(Columns, ",")+"\n"), 0600); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	second, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached table with 1 row, got %d", len(second))
	}
	if &first[0] != &second[0] {
		t.Error("expected the same cached slice on repeated Load")
	}
}

func TestSaveInvalidatesCache(t *testing.T) {
	store := setupTestStore(t)

	before, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("expected empty table, got %d", len(before))
	}

	e := models.NewSetEntry(models.NewDate(2024, 1, 10), "Row", models.SetInput{SetNum: 1, Reps: 10, Weight: 40}, models.UnitLb, "", time.Now())
	if err := store.Save([]models.SetEntry{e}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	after, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(after) != 1 || after[0].ID != e.ID {
		t.Errorf("expected Load to reflect the save, got %+v", after)
	}
}

func TestSaveLoadPreservesFields(t *testing.T) {
	store := setupTestStore(t)

	ts := time.Date(2024, 1, 15, 18, 4, 5, 123456000, time.UTC)
	want := []models.SetEntry{
		models.NewSetEntry(models.NewDate(2024, 1, 15), "Bench Press", models.SetInput{SetNum: 1, Reps: 8, Weight: 52.5}, models.UnitKg, "pause reps, \"slow\"", ts),
		models.NewSetEntry(models.NewDate(2024, 1, 14), "Curl", models.SetInput{SetNum: 2, Reps: 12, Weight: 25}, models.UnitLb, "", ts),
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b models.Date) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultTablePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	if got := DataDir(); got != "/tmp/xdg-data/gymlog" {
		t.Errorf("DataDir = %s, want /tmp/xdg-data/gymlog", got)
	}
	if got := DefaultTablePath(); got != "/tmp/xdg-data/gymlog/workouts.csv" {
		t.Errorf("DefaultTablePath = %s", got)
	}
}
