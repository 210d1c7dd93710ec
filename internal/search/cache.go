package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cache file names. Search results and fetched documents are cached
// separately so a document flush does not evict search results.
const (
	SearchCacheFile   = "search_cache.json"
	DocumentCacheFile = "document_cache.json"
)

// DefaultTTL is how long a cached entry stays fresh.
const DefaultTTL = 24 * time.Hour

type cacheEntry struct {
	Data     json.RawMessage `json:"data"`
	StoredAt time.Time       `json:"stored_at"`
}

// Cache is a disk-backed TTL cache. Every operation re-reads the file
// under the mutex, so concurrent runs sharing a cache directory stay
// consistent at the cost of a read-modify-write per put.
type Cache struct {
	mu  sync.Mutex
	dir string
	ttl time.Duration
}

// NewCache creates a cache rooted at dir. A non-positive ttl falls
// back to DefaultTTL.
func NewCache(dir string, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{dir: dir, ttl: ttl}
}

// Get returns the cached value for key in the given cache file, or
// false when missing or expired.
func (c *Cache) Get(file, key string) (json.RawMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load(file)
	if err != nil {
		return nil, false
	}
	e, ok := entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.StoredAt) > c.ttl {
		return nil, false
	}
	return e.Data, true
}

// Put stores a value under key, dropping expired entries on the way.
func (c *Cache) Put(file, key string, data json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.load(file)
	if err != nil {
		entries = map[string]cacheEntry{}
	}

	now := time.Now()
	for k, e := range entries {
		if now.Sub(e.StoredAt) > c.ttl {
			delete(entries, k)
		}
	}
	entries[key] = cacheEntry{Data: data, StoredAt: now}

	return c.save(file, entries)
}

func (c *Cache) load(file string) (map[string]cacheEntry, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, file))
	if err != nil {
		return map[string]cacheEntry{}, err
	}
	entries := map[string]cacheEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]cacheEntry{}, err
	}
	return entries, nil
}

func (c *Cache) save(file string, entries map[string]cacheEntry) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, file), data, 0o644)
}
