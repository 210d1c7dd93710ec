package search

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := NewCache(t.TempDir(), DefaultTTL)

	require.NoError(t, c.Put(SearchCacheFile, "математика 5", json.RawMessage(`["a"]`)))

	data, ok := c.Get(SearchCacheFile, "математика 5")
	require.True(t, ok)
	assert.JSONEq(t, `["a"]`, string(data))
}

func TestCache_MissingKey(t *testing.T) {
	c := NewCache(t.TempDir(), DefaultTTL)
	_, ok := c.Get(SearchCacheFile, "немає")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryIgnored(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, DefaultTTL)

	stale := map[string]cacheEntry{
		"query": {Data: json.RawMessage(`"old"`), StoredAt: time.Now().Add(-25 * time.Hour)},
	}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SearchCacheFile), data, 0o644))

	_, ok := c.Get(SearchCacheFile, "query")
	assert.False(t, ok, "entry older than the TTL must be treated as a miss")
}

func TestCache_PutDropsExpiredEntries(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, DefaultTTL)

	stale := map[string]cacheEntry{
		"old": {Data: json.RawMessage(`"old"`), StoredAt: time.Now().Add(-48 * time.Hour)},
	}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SearchCacheFile), data, 0o644))

	require.NoError(t, c.Put(SearchCacheFile, "new", json.RawMessage(`"new"`)))

	raw, err := os.ReadFile(filepath.Join(dir, SearchCacheFile))
	require.NoError(t, err)
	entries := map[string]cacheEntry{}
	require.NoError(t, json.Unmarshal(raw, &entries))
	assert.NotContains(t, entries, "old")
	assert.Contains(t, entries, "new")
}

func TestCache_SeparateFiles(t *testing.T) {
	c := NewCache(t.TempDir(), DefaultTTL)
	require.NoError(t, c.Put(SearchCacheFile, "k", json.RawMessage(`1`)))

	_, ok := c.Get(DocumentCacheFile, "k")
	assert.False(t, ok, "cache files must be independent")
}
