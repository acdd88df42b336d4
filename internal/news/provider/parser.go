package provider

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coinpulse/crypto-news-search/internal/models"
	"github.com/coinpulse/crypto-news-search/internal/news/sentiment"
	"github.com/coinpulse/crypto-news-search/internal/utils"
)

// newsDataEnvelope is the top-level NewsData.io response shape.
type newsDataEnvelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Results []newsDataArticle `json:"results"`
}

// newsDataArticle uses pointer fields so absent keys are distinguishable
// from empty values. Partial payloads are expected: an article missing a
// required field is skipped, not an error.
type newsDataArticle struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
	PubDate     *string `json:"pubDate"`
	SourceID    *string `json:"source_id"`
}

// pubDateLayouts is the ordered strategy chain for publish dates. NewsData
// has no single authoritative format; the first layout that parses wins.
// New formats are added here, not as another conditional branch.
var pubDateLayouts = []struct {
	layout string
	inUTC  bool // bare layouts carry no zone and are read as UTC
}{
	{layout: time.RFC3339},
	{layout: time.RFC1123Z},
	{layout: time.RFC1123},
	{layout: "2006-01-02 15:04:05", inUTC: true},
}

// parseNewsDataResponse validates a raw response body and builds classified
// news items. The output is unsorted.
func parseNewsDataResponse(body []byte) ([]models.NewsItem, error) {
	var envelope newsDataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if envelope.Status == "error" {
		return nil, &ProviderError{Message: envelope.Message}
	}

	items := make([]models.NewsItem, 0, len(envelope.Results))
	for _, article := range envelope.Results {
		if article.Title == nil || article.Link == nil || article.PubDate == nil || article.SourceID == nil {
			continue
		}

		publishedAt, err := parsePubDate(*article.PubDate)
		if err != nil {
			// One bad date fails the whole batch: see DateParseError.
			return nil, err
		}

		summary := ""
		if article.Description != nil {
			summary = utils.StripMarkdown(*article.Description)
		}

		items = append(items, models.NewsItem{
			ID:          uuid.NewString(),
			Title:       *article.Title,
			Source:      *article.SourceID,
			URL:         *article.Link,
			PublishedAt: publishedAt,
			Summary:     summary,
			Sentiment:   sentiment.Classify(summary),
			Provider:    NewsDataName,
		})
	}

	return items, nil
}

// parsePubDate tries each known layout in order and returns the timestamp
// in UTC.
func parsePubDate(raw string) (time.Time, error) {
	for _, strategy := range pubDateLayouts {
		if strategy.inUTC {
			if t, err := time.ParseInLocation(strategy.layout, raw, time.UTC); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.Parse(strategy.layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &DateParseError{Raw: raw}
}
