package news

import (
	"sort"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

// SortByPublished orders items newest first, in place. The sort is stable:
// items with equal publish times keep their input order.
func SortByPublished(items []models.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}
