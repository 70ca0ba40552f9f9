package contextengine

import (
	"os"
	"sync"
	"time"
)

// cacheEntry holds one cached file read with the metadata needed for
// invalidation.
type cacheEntry struct {
	content string
	modTime time.Time
	readAt  time.Time
}

// ContentCache caches file contents keyed by absolute path. Entries are
// validated against the on-disk modification time on every lookup and
// re-read on mismatch; beyond that the cache never evicts. Unbounded growth
// over a process lifetime is an accepted tradeoff: the server process is
// cheap to restart and serves one project at a time.
//
// Safe for concurrent use. Concurrent misses on the same path may race,
// but both reads observe the same on-disk state, so the write is idempotent.
type ContentCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewContentCache returns an empty cache.
func NewContentCache() *ContentCache {
	return &ContentCache{entries: make(map[string]cacheEntry)}
}

// Get returns the content and modification time for absPath, reading from
// disk on a miss or when the cached modification time no longer matches the
// file. Errors come straight from the filesystem; callers decide whether a
// failed read is fatal.
func (c *ContentCache) Get(absPath string) (string, time.Time, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		return "", time.Time{}, err
	}
	modTime := info.ModTime()

	c.mu.RLock()
	entry, ok := c.entries[absPath]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(modTime) {
		return entry.content, entry.modTime, nil
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return "", time.Time{}, err
	}

	entry = cacheEntry{
		content: string(raw),
		modTime: modTime,
		readAt:  time.Now(),
	}
	c.mu.Lock()
	c.entries[absPath] = entry
	c.mu.Unlock()

	return entry.content, entry.modTime, nil
}

// Len returns the number of cached entries.
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every cached entry.
func (c *ContentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
