// ABOUTME: Tests for the Date calendar type.
// ABOUTME: Covers parsing, formatting, ordering, and JSON encoding.
package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain date", input: "2024-01-15", want: "2024-01-15"},
		{name: "date with time", input: "2024-01-15 00:00:00", want: "2024-01-15"},
		{name: "RFC3339", input: "2024-01-15T23:10:00Z", want: "2024-01-15"},
		{name: "garbage", input: "15/01/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateOfDropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	d := DateOf(time.Date(2024, 3, 1, 1, 30, 0, 0, loc))
	if d.String() != "2024-03-01" {
		t.Errorf("DateOf = %s, want 2024-03-01", d)
	}
	if !d.Equal(NewDate(2024, 3, 1)) {
		t.Error("expected DateOf to equal NewDate for the same day")
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, 1, 10)
	b := NewDate(2024, 1, 12)

	if !a.Before(b) || !b.After(a) {
		t.Error("expected 2024-01-10 before 2024-01-12")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare returned wrong ordering")
	}
	if !a.AddDays(2).Equal(b) {
		t.Errorf("AddDays(2) = %s, want %s", a.AddDays(2), b)
	}
}

func TestDateISOWeek(t *testing.T) {
	// 2021-01-03 is a Sunday belonging to ISO week 53 of 2020.
	y, w := NewDate(2021, 1, 3).ISOWeek()
	if y != 2020 || w != 53 {
		t.Errorf("ISOWeek = %d-W%d, want 2020-W53", y, w)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 1, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-01-15"` {
		t.Errorf("Marshal = %s, want \"2024-01-15\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestZeroDateString(t *testing.T) {
	var d Date
	if !d.IsZero() || d.String() != "" {
		t.Errorf("zero Date should be empty, got %q", d.String())
	}
}
