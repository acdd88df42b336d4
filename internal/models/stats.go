package models

// StatsSnapshot is a read-only view of the cache and lookup counters.
type StatsSnapshot struct {
	TotalKeys       int     `json:"total_keys"`
	MemoryUsedBytes int64   `json:"memory_used_bytes"`
	Hits            int64   `json:"hits"`
	Misses          int64   `json:"misses"`
	HitRate         float64 `json:"hit_rate"`
}

// TermCount is one entry of the top-searches ranking.
type TermCount struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}
