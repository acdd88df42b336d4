package news

import (
	"fmt"
	"testing"
	"time"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

func cachedItems(titles ...string) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(titles))
	for _, title := range titles {
		items = append(items, models.NewsItem{
			ID:    title,
			Title: title,
			URL:   "https://a.example/" + title,
		})
	}
	return items
}

func TestCacheGetAbsent(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	if _, ok := cache.Get("news:bitcoin"); ok {
		t.Error("Get on empty cache should miss")
	}
}

func TestCacheSetGet(t *testing.T) {
	cache := NewCache(time.Minute, 10)
	cache.Set("news:bitcoin", cachedItems("one", "two"))

	items, ok := cache.Get("news:bitcoin")
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
	if cache.MemoryUsed() <= 0 {
		t.Errorf("MemoryUsed = %d, want > 0", cache.MemoryUsed())
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10*time.Millisecond, 10)
	cache.Set("news:bitcoin", cachedItems("one"))

	if _, ok := cache.Get("news:bitcoin"); !ok {
		t.Fatal("fresh entry should hit")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("news:bitcoin"); ok {
		t.Error("expired entry should miss")
	}
}

func TestCacheReplaceAccounting(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	cache.Set("news:bitcoin", cachedItems("one", "two", "three"))
	large := cache.MemoryUsed()

	cache.Set("news:bitcoin", cachedItems("one"))
	small := cache.MemoryUsed()

	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1 after replace", cache.Len())
	}
	if small >= large {
		t.Errorf("MemoryUsed = %d after shrinking replace, was %d", small, large)
	}
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	cache := NewCache(time.Minute, 3)

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("news:term-%d", i), cachedItems("one"))
		time.Sleep(time.Millisecond)
	}
	cache.Set("news:term-3", cachedItems("one"))

	if cache.Len() != 3 {
		t.Errorf("Len = %d, want 3 after eviction", cache.Len())
	}
	if _, ok := cache.Get("news:term-0"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := cache.Get("news:term-3"); !ok {
		t.Error("newest entry should survive eviction")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(time.Minute, 10)
	cache.Set("news:bitcoin", cachedItems("one"))
	cache.Set("news:ethereum", cachedItems("two"))

	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Len = %d, want 0 after Clear", cache.Len())
	}
	if cache.MemoryUsed() != 0 {
		t.Errorf("MemoryUsed = %d, want 0 after Clear", cache.MemoryUsed())
	}
}
