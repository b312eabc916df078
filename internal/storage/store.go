// ABOUTME: CSV-backed workout table with a read-through cache.
// ABOUTME: Handles lazy file creation, whole-table load/save, and default XDG paths.
package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harperreed/gymlog/internal/models"
	"go.uber.org/zap"
)

// TableFileName is the backing file name inside the data directory.
const TableFileName = "workouts.csv"

// Store persists the workout table as a single CSV file.
type Store struct {
	path   string
	cache  *tableCache
	logger *zap.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open returns a Store for the table at path, creating the file if absent.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		cache:  newTableCache(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.EnsureTableExists(); err != nil {
		return nil, err
	}
	return s, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gymlog")
}

// DefaultTablePath returns the default table path following XDG spec.
func DefaultTablePath() string {
	return filepath.Join(DataDir(), TableFileName)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases resources. For Store this is a no-op.
func (s *Store) Close() error {
	return nil
}

// EnsureTableExists creates the backing file with only a header row if it
// does not exist yet. Safe to call on every access.
func (s *Store) EnsureTableExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	header := strings.Join(Columns, ",") + "\n"
	if err := os.WriteFile(s.path, []byte(header), 0600); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	s.logger.Debug("created empty table", zap.String("path", s.path))
	return nil
}

// Load returns every entry in the table. Results are cached until the next
// Save; the returned slice is shared and must not be modified.
func (s *Store) Load() ([]models.SetEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save replaces the table contents with entries.
func (s *Store) Save(entries []models.SetEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(entries)
}

func (s *Store) load() ([]models.SetEntry, error) {
	entries, hit, err := s.cache.GetOrLoad(s.readTable)
	if err != nil {
		return nil, err
	}
	if hit {
		s.logger.Debug("table cache hit", zap.Int("rows", len(entries)))
	}
	return entries, nil
}

func (s *Store) readTable() ([]models.SetEntry, error) {
	if err := s.EnsureTableExists(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	entries, err := ReadCSV(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", s.path, err)
	}
	s.logger.Debug("loaded table", zap.String("path", s.path), zap.Int("rows", len(entries)))
	return entries, nil
}

func (s *Store) save(entries []models.SetEntry) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	err := os.WriteFile(s.path, buf.Bytes(), 0600)
	// Whatever reached the disk, the cached copy no longer describes it.
	s.cache.Invalidate()
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	s.logger.Debug("saved table", zap.String("path", s.path), zap.Int("rows", len(entries)))
	return nil
}
