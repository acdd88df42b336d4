package models

import "time"

// Sentiment is the classification label attached to a news item.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// NewsItem is a single validated news entry. Items are built by the response
// parser together with the sentiment classifier and are never mutated after
// construction.
type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary"`
	Sentiment   Sentiment `json:"sentiment"`
	Provider    string    `json:"provider"`
}

// QueryMeta describes how a raw query was resolved.
type QueryMeta struct {
	Original  string `json:"original"`
	Canonical string `json:"canonical"`
	Display   string `json:"display"`
}

// SearchResult is the ordered outcome of one resolve call. An empty Items
// slice is a valid result, distinct from a failed fetch (which surfaces as an
// error instead).
type SearchResult struct {
	Query  QueryMeta  `json:"query"`
	Items  []NewsItem `json:"results"`
	Total  int        `json:"total"`
	Cached bool       `json:"cached"`
}
