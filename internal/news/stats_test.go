package news

import (
	"sync"
	"testing"
)

func TestStatsHitRateBeforeAnyLookup(t *testing.T) {
	stats := NewStats()

	if rate := stats.HitRate(); rate != 0 {
		t.Errorf("HitRate = %f, want 0 with no lookups", rate)
	}
}

func TestStatsHitRate(t *testing.T) {
	stats := NewStats()
	stats.RecordHit("bitcoin")
	stats.RecordMiss()
	stats.RecordMiss()
	stats.RecordMiss()

	if rate := stats.HitRate(); rate != 0.25 {
		t.Errorf("HitRate = %f, want 0.25", rate)
	}

	hits, misses := stats.Counters()
	if hits != 1 || misses != 3 {
		t.Errorf("Counters = %d/%d, want 1/3", hits, misses)
	}
}

func TestStatsTopSearches(t *testing.T) {
	stats := NewStats()
	for i := 0; i < 3; i++ {
		stats.RecordSearch("ethereum")
	}
	for i := 0; i < 3; i++ {
		stats.RecordSearch("bitcoin")
	}
	stats.RecordSearch("cardano")

	top := stats.TopSearches(2)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	// bitcoin and ethereum tie on count, so the tie breaks on the term.
	if top[0].Term != "bitcoin" || top[0].Count != 3 {
		t.Errorf("top[0] = %+v, want {bitcoin 3}", top[0])
	}
	if top[1].Term != "ethereum" || top[1].Count != 3 {
		t.Errorf("top[1] = %+v, want {ethereum 3}", top[1])
	}
}

func TestStatsTopSearchesLimitLargerThanTerms(t *testing.T) {
	stats := NewStats()
	stats.RecordSearch("bitcoin")

	if top := stats.TopSearches(10); len(top) != 1 {
		t.Errorf("len(top) = %d, want 1", len(top))
	}
	if top := stats.TopSearches(0); len(top) != 1 {
		t.Errorf("len(top) = %d with n=0, want 1", len(top))
	}
}

func TestStatsConcurrentUpdates(t *testing.T) {
	stats := NewStats()

	const workers = 8
	const perWorker = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				stats.RecordHit("bitcoin")
				stats.RecordMiss()
			}
		}()
	}
	wg.Wait()

	hits, misses := stats.Counters()
	if hits != workers*perWorker || misses != workers*perWorker {
		t.Errorf("Counters = %d/%d, want %d each", hits, misses, workers*perWorker)
	}
	top := stats.TopSearches(1)
	if len(top) != 1 || top[0].Count != workers*perWorker {
		t.Errorf("TopSearches = %+v, want [{bitcoin %d}]", top, workers*perWorker)
	}
}
