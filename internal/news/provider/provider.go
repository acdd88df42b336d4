// Package provider integrates external news sources. Each source implements
// the NewsProvider capability (authenticated fetch plus payload parsing) so
// the pipeline never depends on a concrete provider's response shape.
package provider

import (
	"context"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

// NewsProvider performs one authenticated retrieval for a canonical search
// term and returns validated, classified news items. Items are unsorted;
// ordering is the caller's concern. Implementations must not retry.
type NewsProvider interface {
	Name() string
	Fetch(ctx context.Context, term string) ([]models.NewsItem, error)
}
