// ABOUTME: Append and delete operations on the workout table.
// ABOUTME: Every mutation is a whole-table rewrite through a single Save.
package storage

import (
	"fmt"
	"strings"

	"github.com/harperreed/gymlog/internal/models"
	"go.uber.org/zap"
)

// AddBatch appends one entry per set, all sharing one creation timestamp,
// and writes them in a single save. The exercise name is not validated here.
// An empty sets slice writes nothing.
func (s *Store) AddBatch(date models.Date, exercise string, sets []models.SetInput, unit models.Unit, notes string) ([]models.SetEntry, error) {
	if len(sets) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("add batch: %w", err)
	}

	batch := models.NewBatch(date, exercise, sets, unit, notes, s.now())

	next := make([]models.SetEntry, 0, len(table)+len(batch))
	next = append(next, table...)
	next = append(next, batch...)

	if err := s.save(next); err != nil {
		return nil, fmt.Errorf("add batch: %w", err)
	}

	s.logger.Debug("added batch",
		zap.String("exercise", batch[0].Exercise),
		zap.String("date", date.String()),
		zap.Int("sets", len(batch)))
	return batch, nil
}

// DeleteByIDs removes every entry whose id is listed. Unknown ids are
// ignored. Returns how many rows were removed.
func (s *Store) DeleteByIDs(ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}
	if len(table) == 0 {
		return 0, nil
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]models.SetEntry, 0, len(table))
	for _, e := range table {
		if _, ok := drop[e.ID]; !ok {
			kept = append(kept, e)
		}
	}

	if err := s.save(kept); err != nil {
		return 0, fmt.Errorf("delete entries: %w", err)
	}

	removed := len(table) - len(kept)
	s.logger.Debug("deleted entries", zap.Int("requested", len(ids)), zap.Int("removed", removed))
	return removed, nil
}

// ResolveIDs expands full ids or unique id prefixes to full ids.
// Duplicates collapse; an unknown or ambiguous prefix is an error.
func (s *Store) ResolveIDs(idsOrPrefixes []string) ([]string, error) {
	table, err := s.Load()
	if err != nil {
		return nil, err
	}

	var resolved []string
	seen := make(map[string]bool)
	for _, want := range idsOrPrefixes {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}

		var matches []string
		for _, e := range table {
			if e.ID == want {
				matches = []string{e.ID}
				break
			}
			if strings.HasPrefix(e.ID, want) {
				matches = append(matches, e.ID)
			}
		}

		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("not found: %s", want)
		case 1:
		default:
			return nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", want)
		}

		if !seen[matches[0]] {
			seen[matches[0]] = true
			resolved = append(resolved, matches[0])
		}
	}
	return resolved, nil
}

// Import appends entries whose ids are not already in the table.
// Entries keep their ids, timestamps, and stored volumes.
func (s *Store) Import(entries []models.SetEntry) (added, skipped int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return 0, 0, fmt.Errorf("import: %w", err)
	}

	known := make(map[string]bool, len(table))
	for _, e := range table {
		known[e.ID] = true
	}

	next := make([]models.SetEntry, 0, len(table)+len(entries))
	next = append(next, table...)
	for _, e := range entries {
		if e.ID == "" || known[e.ID] {
			skipped++
			continue
		}
		known[e.ID] = true
		next = append(next, e)
		added++
	}

	if added == 0 {
		return 0, skipped, nil
	}
	if err := s.save(next); err != nil {
		return 0, 0, fmt.Errorf("import: %w", err)
	}
	return added, skipped, nil
}

// Replace overwrites the whole table with entries.
func (s *Store) Replace(entries []models.SetEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(entries)
}
