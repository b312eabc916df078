// ABOUTME: CSV codec for the workout table.
// ABOUTME: Writes the fixed column order and reads leniently, coercing bad cells to zero values.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/gymlog/internal/models"
	"go.uber.org/zap"
)

// Columns is the header of the backing file, in order.
var Columns = []string{
	"id", "timestamp", "date", "exercise", "set_num",
	"reps", "weight", "unit", "notes", "volume",
}

// timestampLayouts are tried in order when reading the timestamp column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// WriteCSV writes the header and one row per entry.
func WriteCSV(w io.Writer, entries []models.SetEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(entryToRecord(e)); err != nil {
			return fmt.Errorf("write row %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func entryToRecord(e models.SetEntry) []string {
	ts := ""
	if !e.Timestamp.IsZero() {
		ts = e.Timestamp.Format(time.RFC3339Nano)
	}
	return []string{
		e.ID,
		ts,
		e.Date.String(),
		e.Exercise,
		strconv.Itoa(e.SetNum),
		strconv.Itoa(e.Reps),
		formatFloat(e.Weight),
		string(e.Unit),
		e.Notes,
		formatFloat(e.Volume),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ReadCSV parses a table written by WriteCSV. Columns are matched by header
// name. Malformed cells never fail the read; they coerce to zero values.
func ReadCSV(r io.Reader, logger *zap.Logger) ([]models.SetEntry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []models.SetEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	entries := []models.SetEntry{}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				logger.Warn("skipping unreadable row", zap.Int("line", line), zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		rc := rowCoercer{record: record, index: index, logger: logger, line: line}
		entries = append(entries, models.SetEntry{
			ID:        rc.str("id"),
			Timestamp: rc.timestamp("timestamp"),
			Date:      rc.date("date"),
			Exercise:  rc.str("exercise"),
			SetNum:    rc.integer("set_num"),
			Reps:      rc.integer("reps"),
			Weight:    rc.real("weight"),
			Unit:      models.Unit(rc.str("unit")),
			Notes:     rc.str("notes"),
			Volume:    rc.real("volume"),
		})
	}

	return entries, nil
}

// rowCoercer reads typed cells out of one CSV record.
type rowCoercer struct {
	record []string
	index  map[string]int
	logger *zap.Logger
	line   int
}

func (rc rowCoercer) str(col string) string {
	i, ok := rc.index[col]
	if !ok || i >= len(rc.record) {
		return ""
	}
	return rc.record[i]
}

func (rc rowCoercer) coerced(col, raw string) {
	rc.logger.Debug("coerced malformed cell",
		zap.Int("line", rc.line),
		zap.String("column", col),
		zap.String("value", raw))
}

func (rc rowCoercer) integer(col string) int {
	raw := strings.TrimSpace(rc.str(col))
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	// "8.0" is how float-typed columns come back from spreadsheet tools.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	rc.coerced(col, raw)
	return 0
}

func (rc rowCoercer) real(col string) float64 {
	raw := strings.TrimSpace(rc.str(col))
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		rc.coerced(col, raw)
		return 0
	}
	return f
}

func (rc rowCoercer) date(col string) models.Date {
	raw := strings.TrimSpace(rc.str(col))
	if raw == "" {
		return models.Date{}
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		rc.coerced(col, raw)
		return models.Date{}
	}
	return d
}

func (rc rowCoercer) timestamp(col string) time.Time {
	raw := strings.TrimSpace(rc.str(col))
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	rc.coerced(col, raw)
	return time.Time{}
}
