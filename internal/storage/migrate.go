// ABOUTME: Data migration between workout tables.
// ABOUTME: Copies every row from a source repository into a destination, keeping ids.

package storage

import (
	"fmt"
)

// MigrateSummary holds counts of migrated rows.
type MigrateSummary struct {
	Rows    int
	Skipped int
}

// MigrateData copies all rows from src to dst. Rows whose id already
// exists in dst are skipped, so running it twice is harmless.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	entries, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load source table: %w", err)
	}

	added, skipped, err := dst.Import(entries)
	if err != nil {
		return nil, fmt.Errorf("write destination table %s: %w", dst.Path(), err)
	}

	return &MigrateSummary{Rows: added, Skipped: skipped}, nil
}
