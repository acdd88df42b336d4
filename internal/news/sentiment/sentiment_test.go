package sentiment

import (
	"testing"

	"github.com/coinpulse/crypto-news-search/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Sentiment
	}{
		{
			name: "positive keywords",
			text: "Ethereum gains amid bullish surge",
			want: models.SentimentPositive,
		},
		{
			name: "negative keywords",
			text: "Bearish crash wipes out the market",
			want: models.SentimentNegative,
		},
		{
			name: "no keywords",
			text: "The exchange announced a new listing",
			want: models.SentimentNeutral,
		},
		{
			name: "equal counts",
			text: "A gain for miners, a decline for traders",
			want: models.SentimentNeutral,
		},
		{
			name: "case insensitive",
			text: "BULLISH SURGE CONTINUES",
			want: models.SentimentPositive,
		},
		{
			name: "empty text",
			text: "",
			want: models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
