// ABOUTME: Read-through cache for the loaded workout table.
// ABOUTME: Holds one table snapshot until the next write invalidates it.
package storage

import (
	"github.com/harperreed/gymlog/internal/models"
	"github.com/patrickmn/go-cache"
)

const tableCacheKey = "table"

// tableCache memoizes the parsed table between writes.
type tableCache struct {
	c *cache.Cache
}

func newTableCache() *tableCache {
	// No expiration and no janitor: entries leave only through Invalidate.
	return &tableCache{c: cache.New(cache.NoExpiration, 0)}
}

// GetOrLoad returns the cached table, calling load on a miss.
// hit reports whether the cached value was used.
func (tc *tableCache) GetOrLoad(load func() ([]models.SetEntry, error)) (entries []models.SetEntry, hit bool, err error) {
	if v, found := tc.c.Get(tableCacheKey); found {
		return v.([]models.SetEntry), true, nil
	}

	entries, err = load()
	if err != nil {
		return nil, false, err
	}
	tc.c.Set(tableCacheKey, entries, cache.NoExpiration)
	return entries, false, nil
}

// Invalidate drops the cached table so the next read goes to disk.
func (tc *tableCache) Invalidate() {
	tc.c.Delete(tableCacheKey)
}
