// ABOUTME: Calendar date type used for workout days.
// ABOUTME: Dates are civil days stored as midnight UTC and serialize as YYYY-MM-DD.
package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the serialized form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string. A trailing time component is ignored.
func ParseDate(s string) (Date, error) {
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return DateOf(t), nil
		}
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Compare returns -1, 0, or +1 ordering d against o.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// ISOWeek returns the ISO 8601 year and week number.
func (d Date) ISOWeek() (year, week int) { return d.t.ISOWeek() }

// String formats the date as YYYY-MM-DD, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
