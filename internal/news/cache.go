package news

import (
	"sync"
	"time"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

// Cache stores resolved news lists in memory, one entry per canonical search
// term. A read never returns an entry older than its TTL: expired entries
// are treated as absent.
type Cache struct {
	mu         sync.RWMutex
	data       map[string]*cacheEntry
	ttl        time.Duration
	maxEntries int
	bytes      int64
}

type cacheEntry struct {
	items      []models.NewsItem
	insertedAt time.Time
	size       int64
}

// NewCache creates a cache with the given TTL and entry limit.
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if maxEntries <= 0 {
		maxEntries = 500
	}
	return &Cache{
		data:       make(map[string]*cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached items for a key. The second return is false for
// both absent and expired entries.
func (c *Cache) Get(key string) ([]models.NewsItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if entry, ok := c.data[key]; ok {
		if time.Since(entry.insertedAt) < c.ttl {
			return entry.items, true
		}
	}
	return nil, false
}

// Set stores items under a key with a fresh TTL, replacing any previous
// entry for the same key.
func (c *Cache) Set(key string, items []models.NewsItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.data[key]; ok {
		c.bytes -= old.size
		delete(c.data, key)
	} else if len(c.data) >= c.maxEntries {
		c.evict()
	}

	entry := &cacheEntry{
		items:      items,
		insertedAt: time.Now(),
		size:       entrySize(key, items),
	}
	c.data[key] = entry
	c.bytes += entry.size
}

// evict drops expired entries, then the oldest entry if still full. Caller
// holds the write lock.
func (c *Cache) evict() {
	now := time.Now()
	for key, entry := range c.data {
		if now.Sub(entry.insertedAt) >= c.ttl {
			c.bytes -= entry.size
			delete(c.data, key)
		}
	}

	if len(c.data) >= c.maxEntries {
		oldest := time.Now()
		oldestKey := ""
		for key, entry := range c.data {
			if entry.insertedAt.Before(oldest) {
				oldest = entry.insertedAt
				oldestKey = key
			}
		}
		if oldestKey != "" {
			c.bytes -= c.data[oldestKey].size
			delete(c.data, oldestKey)
		}
	}
}

// Len returns the number of stored keys, expired entries included until
// they are evicted.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// MemoryUsed returns the estimated footprint of stored entries in bytes.
func (c *Cache) MemoryUsed() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bytes
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*cacheEntry)
	c.bytes = 0
}

// entrySize approximates the memory held by one entry: string payloads plus
// a fixed per-item overhead for the struct itself.
func entrySize(key string, items []models.NewsItem) int64 {
	const itemOverhead = 64
	size := int64(len(key))
	for _, item := range items {
		size += int64(len(item.ID) + len(item.Title) + len(item.Source) +
			len(item.URL) + len(item.Summary) + len(item.Sentiment) +
			len(item.Provider))
		size += itemOverhead
	}
	return size
}
