// ABOUTME: Tests for the CSV codec.
// ABOUTME: Verifies lenient coercion of malformed cells and header-based column lookup.
package storage

import (
	"strings"
	"testing"
	"time"
)

func TestReadCSVCoercesMalformedCells(t *testing.T) {
	input := strings.Join([]string{
		"id,timestamp,date,exercise,set_num,reps,weight,unit,notes,volume",
		"a1,2024-01-15T10:00:00.123456,2024-01-15,Squat,1,eight,heavy,kg,,n/a",
		"a2,not-a-time,bad-date,Squat,2.0,8.0,60,kg,ok,480",
	}, "\n")

	entries, err := ReadCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(entries))
	}

	first := entries[0]
	if first.Reps != 0 || first.Weight != 0 || first.Volume != 0 {
		t.Errorf("expected zero coercion, got reps=%d weight=%f volume=%f", first.Reps, first.Weight, first.Volume)
	}
	wantTS := time.Date(2024, 1, 15, 10, 0, 0, 123456000, time.UTC)
	if !first.Timestamp.Equal(wantTS) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, wantTS)
	}

	second := entries[1]
	if second.SetNum != 2 || second.Reps != 8 {
		t.Errorf("expected float-typed ints to coerce, got set=%d reps=%d", second.SetNum, second.Reps)
	}
	if !second.Date.IsZero() {
		t.Errorf("expected zero date for bad input, got %s", second.Date)
	}
	if !second.Timestamp.IsZero() {
		t.Errorf("expected zero timestamp for bad input, got %v", second.Timestamp)
	}
	if second.Volume != 480 {
		t.Errorf("Volume = %f, want 480", second.Volume)
	}
}

func TestReadCSVMatchesColumnsByName(t *testing.T) {
	input := "exercise,id,volume,reps,weight\nCurl,x1,100,10,10\nPress,x2\n"

	entries, err := ReadCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(entries))
	}
	if entries[0].ID != "x1" || entries[0].Exercise != "Curl" || entries[0].Volume != 100 {
		t.Errorf("unexpected first row: %+v", entries[0])
	}
	if entries[1].ID != "x2" || entries[1].Reps != 0 {
		t.Errorf("expected short row to read missing cells as zero: %+v", entries[1])
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	entries, err := ReadCSV(strings.NewReader(""), nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", entries)
	}
}

func TestWriteCSVQuotesNotes(t *testing.T) {
	input := "id,timestamp,date,exercise,set_num,reps,weight,unit,notes,volume\n" +
		"q1,,2024-01-15,Bench Press,1,8,50,kg,\"tight, then \"\"loose\"\"\",400\n"

	entries, err := ReadCSV(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if entries[0].Notes != `tight, then "loose"` {
		t.Errorf("Notes = %q", entries[0].Notes)
	}

	out, err := ExportCSV(entries)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if string(out) != input {
		t.Errorf("ExportCSV =\n%s\nwant\n%s", out, input)
	}
}
