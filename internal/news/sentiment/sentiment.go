// Package sentiment labels news text as positive, negative or neutral using
// keyword counting. Deliberately simple: substring containment, not word
// boundaries, so "upward" counts for "up".
package sentiment

import (
	"strings"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

var positiveWords = []string{"bullish", "surge", "gain", "rise", "growth", "positive", "up", "high"}

var negativeWords = []string{"bearish", "crash", "drop", "fall", "decline", "negative", "down", "low"}

// Classify returns the sentiment label for a piece of text. Pure and
// stateless; equal keyword counts (including zero) classify as neutral.
func Classify(text string) models.Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}

	negative := 0
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return models.SentimentPositive
	case negative > positive:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
