// ABOUTME: Repository interface for workout table storage.
// ABOUTME: Defines the contract the CLI and MCP server use for reads and mutations.
package storage

import (
	"github.com/harperreed/gymlog/internal/models"
)

// Repository defines the storage interface for the workout log.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Table access
	Load() ([]models.SetEntry, error)
	Save(entries []models.SetEntry) error

	// Entry log
	AddBatch(date models.Date, exercise string, sets []models.SetInput, unit models.Unit, notes string) ([]models.SetEntry, error)
	DeleteByIDs(ids []string) (int, error)
	ResolveIDs(idsOrPrefixes []string) ([]string, error)

	// Import/restore
	Import(entries []models.SetEntry) (added, skipped int, err error)
	Replace(entries []models.SetEntry) error

	// Lifecycle
	Path() string
	Close() error
}

// Compile-time check that Store implements Repository.
var _ Repository = (*Store)(nil)
