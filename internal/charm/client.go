// ABOUTME: Charm KV client wrapper for backing up the workout table.
// ABOUTME: Stores the whole CSV table as one encrypted snapshot and syncs it via Charm Cloud.
package charm

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

const (
	dbName    = "gymlog"
	charmHost = "charm.2389.dev"

	// SnapshotKey holds the most recently pushed table.
	SnapshotKey = "table:workouts"

	snapshotVersion = "1"
)

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

// Snapshot is a point-in-time copy of the CSV table.
type Snapshot struct {
	Version  string    `json:"version"`
	PushedAt time.Time `json:"pushed_at"`
	Rows     int       `json:"rows"`
	CSV      []byte    `json:"csv"`
}

type Client struct {
	kv *kv.KV
	mu sync.RWMutex
}

// InitClient initializes the global Charm client.
// Thread-safe; can be called multiple times.
func InitClient() (*Client, error) {
	clientOnce.Do(func() {
		// Set server before opening KV
		if os.Getenv("CHARM_HOST") == "" {
			if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
				clientErr = err
				return
			}
		}

		db, err := kv.OpenWithDefaultsFallback(dbName)
		if err != nil {
			clientErr = err
			return
		}

		globalClient = &Client{kv: db}
	})

	return globalClient, clientErr
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Push stores the CSV table as the current snapshot and syncs it.
func (c *Client) Push(csv []byte, rows int) (*Snapshot, error) {
	snap := &Snapshot{
		Version:  snapshotVersion,
		PushedAt: time.Now().UTC(),
		Rows:     rows,
		CSV:      csv,
	}
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return nil, fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := c.kv.Set([]byte(SnapshotKey), data); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	if err := c.kv.Sync(); err != nil {
		return nil, fmt.Errorf("sync snapshot: %w", err)
	}
	return snap, nil
}

// Pull syncs from Charm Cloud and returns the latest snapshot.
func (c *Client) Pull() (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.kv.IsReadOnly() {
		if err := c.kv.Sync(); err != nil {
			return nil, fmt.Errorf("sync: %w", err)
		}
	}

	data, err := c.kv.Get([]byte(SnapshotKey))
	if err != nil {
		return nil, fmt.Errorf("no snapshot found (run 'gymlog sync push' first): %w", err)
	}
	return DecodeSnapshot(data)
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %q", s.Version)
	}
	return &s, nil
}
