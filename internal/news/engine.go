package news

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/coinpulse/crypto-news-search/internal/models"
	"github.com/coinpulse/crypto-news-search/internal/news/provider"
	"github.com/coinpulse/crypto-news-search/internal/news/query"
)

// Engine is the cache-aside orchestrator. Constructed once at process start
// and shared by every transport so cache and statistics stay consistent
// regardless of where a query came from.
type Engine struct {
	provider provider.NewsProvider
	cache    *Cache
	stats    *Stats
	group    singleflight.Group
}

// NewEngine creates an engine over a news provider with an empty cache and
// zeroed statistics.
func NewEngine(p provider.NewsProvider, cacheTTL time.Duration, cacheMaxEntries int) *Engine {
	return &Engine{
		provider: p,
		cache:    NewCache(cacheTTL, cacheMaxEntries),
		stats:    NewStats(),
	}
}

// cacheKey derives the cache key for a canonical term. Keyed on the
// pre-qualifier term, so keys stay stable regardless of how the
// provider-facing query is built.
func cacheKey(term string) string {
	return "news:" + term
}

// Resolve answers a raw query from cache, or on miss drives the full
// pipeline: fetch, parse, classify, order, cache write. Pipeline failures
// propagate wrapped but unconverted; an expired cache entry is never used as
// a fallback. Hit/miss counters advance exactly once per call.
func (e *Engine) Resolve(ctx context.Context, rawQuery string) (*models.SearchResult, error) {
	canonical, err := query.Normalize(rawQuery)
	if err != nil {
		return nil, err
	}

	key := cacheKey(canonical)

	if items, ok := e.cache.Get(key); ok {
		e.stats.RecordHit(canonical)
		return e.buildResult(rawQuery, canonical, items, true), nil
	}

	e.stats.RecordMiss()

	// Concurrent misses for the same term coalesce into one upstream fetch.
	fetched, err, _ := e.group.Do(key, func() (interface{}, error) {
		items, err := e.provider.Fetch(ctx, canonical)
		if err != nil {
			return nil, err
		}
		SortByPublished(items)
		e.cache.Set(key, items)
		return items, nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", canonical, err)
	}

	e.stats.RecordSearch(canonical)
	return e.buildResult(rawQuery, canonical, fetched.([]models.NewsItem), false), nil
}

// StatsSnapshot returns a read-only view of cache size, memory footprint and
// hit rate.
func (e *Engine) StatsSnapshot() models.StatsSnapshot {
	hits, misses := e.stats.Counters()
	return models.StatsSnapshot{
		TotalKeys:       e.cache.Len(),
		MemoryUsedBytes: e.cache.MemoryUsed(),
		Hits:            hits,
		Misses:          misses,
		HitRate:         e.stats.HitRate(),
	}
}

// TopSearches returns the n most searched canonical terms.
func (e *Engine) TopSearches(n int) []models.TermCount {
	return e.stats.TopSearches(n)
}

func (e *Engine) buildResult(raw, canonical string, items []models.NewsItem, cached bool) *models.SearchResult {
	return &models.SearchResult{
		Query: models.QueryMeta{
			Original:  raw,
			Canonical: canonical,
			Display:   query.DisplayName(canonical),
		},
		Items:  items,
		Total:  len(items),
		Cached: cached,
	}
}
