package news

import (
	"sort"
	"sync"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

// Stats is the process-wide lookup aggregate: hit and miss counters plus
// per-term search counts. Initialized empty at process start and never
// persisted. Every method is safe for concurrent use; each update happens
// under one lock, never as a read-modify-write race.
type Stats struct {
	mu     sync.Mutex
	hits   int64
	misses int64
	counts map[string]int64
}

// NewStats creates an empty aggregate.
func NewStats() *Stats {
	return &Stats{counts: make(map[string]int64)}
}

// RecordHit counts one cache hit and one search for the term.
func (s *Stats) RecordHit(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits++
	s.counts[term]++
}

// RecordMiss counts one cache miss. The per-term count is recorded
// separately, only once the miss resolves successfully.
func (s *Stats) RecordMiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.misses++
}

// RecordSearch counts one search for the term.
func (s *Stats) RecordSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[term]++
}

// Counters returns the current hit and miss totals.
func (s *Stats) Counters() (hits, misses int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s *Stats) HitRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total)
}

// TopSearches returns the n most searched terms, most frequent first. Ties
// order by term so the ranking is deterministic.
func (s *Stats) TopSearches(n int) []models.TermCount {
	s.mu.Lock()
	ranked := make([]models.TermCount, 0, len(s.counts))
	for term, count := range s.counts {
		ranked = append(ranked, models.TermCount{Term: term, Count: count})
	}
	s.mu.Unlock()

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
