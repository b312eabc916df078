// ABOUTME: SetEntry model, Unit enum, and batch construction for workout sets.
// ABOUTME: One SetEntry is one logged set; a batch shares date, exercise, and timestamp.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Unit is the weight unit recorded alongside each set.
type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"
)

// AllUnits lists the accepted weight units.
var AllUnits = []Unit{UnitKg, UnitLb}

// IsValidUnit checks if a string is a valid weight unit.
func IsValidUnit(s string) bool {
	for _, u := range AllUnits {
		if string(u) == s {
			return true
		}
	}
	return false
}

// SetInput is one row of a submission: the set ordinal plus what was lifted.
type SetInput struct {
	SetNum int     `json:"set_num"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// SetEntry represents a single logged set.
type SetEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Date      Date      `json:"date"`
	Exercise  string    `json:"exercise"`
	SetNum    int       `json:"set_num"`
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	Unit      Unit      `json:"unit"`
	Notes     string    `json:"notes"`
	Volume    float64   `json:"volume"`
}

// NewSetEntry creates a SetEntry with a generated UUID.
// Volume is computed here and never recomputed afterwards.
func NewSetEntry(date Date, exercise string, in SetInput, unit Unit, notes string, ts time.Time) SetEntry {
	return SetEntry{
		ID:        uuid.New().String(),
		Timestamp: ts,
		Date:      date,
		Exercise:  strings.TrimSpace(exercise),
		SetNum:    in.SetNum,
		Reps:      in.Reps,
		Weight:    in.Weight,
		Unit:      unit,
		Notes:     strings.TrimSpace(notes),
		Volume:    float64(in.Reps) * in.Weight,
	}
}

// NewBatch builds one SetEntry per input, all sharing the timestamp ts.
func NewBatch(date Date, exercise string, sets []SetInput, unit Unit, notes string, ts time.Time) []SetEntry {
	entries := make([]SetEntry, 0, len(sets))
	for _, s := range sets {
		entries = append(entries, NewSetEntry(date, exercise, s, unit, notes, ts))
	}
	return entries
}

// ShortID returns the 8-character id prefix shown in listings.
func (e SetEntry) ShortID() string {
	if len(e.ID) <= 8 {
		return e.ID
	}
	return e.ID[:8]
}

// Label renders the entry the way history listings show it, ending with the full id.
func (e SetEntry) Label() string {
	return fmt.Sprintf("%s | %s | set %d | %d reps x %g%s (vol %g) | id:%s",
		e.Date, e.Exercise, e.SetNum, e.Reps, e.Weight, e.Unit, e.Volume, e.ID)
}

// IDFromLabel extracts the id from a string produced by Label.
func IDFromLabel(label string) string {
	if i := strings.LastIndex(label, "id:"); i >= 0 {
		return label[i+len("id:"):]
	}
	return label
}
