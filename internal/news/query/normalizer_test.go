package query

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ticker lowercase", input: "btc", want: "bitcoin"},
		{name: "ticker uppercase", input: "BTC", want: "bitcoin"},
		{name: "ticker mixed case", input: "Btc", want: "bitcoin"},
		{name: "ticker with whitespace", input: "  btc  ", want: "bitcoin"},
		{name: "ticker with internal spaces", input: "b t c", want: "bitcoin"},
		{name: "ether alias", input: "ETHER", want: "ethereum"},
		{name: "eth alias", input: " eth ", want: "ethereum"},
		{name: "canonical name passes through", input: "bitcoin", want: "bitcoin"},
		{name: "unknown term kept", input: "Blockchain News", want: "blockchain news"},
		{name: "accented input folds", input: "bitcóin", want: "bitcoin"},
		{name: "collapsed whitespace", input: "ethereum   news", want: "ethereum news"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := Normalize(input); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("Normalize(%q) error = %v, want ErrInvalidQuery", input, err)
		}
	}
}

func TestProviderQuery(t *testing.T) {
	got := ProviderQuery("ethereum")
	want := "ethereum cryptocurrency"
	if got != want {
		t.Errorf("ProviderQuery = %q, want %q", got, want)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "btc", want: "BITCOIN"},
		{input: "bitcoin", want: "BITCOIN"},
		{input: "ETH", want: "ETHEREUM"},
		{input: "defi", want: "DEFI"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Every alias of every asset must normalize to the same canonical term as
// the canonical name itself: cache keys depend on it.
func TestAliasTableConsistency(t *testing.T) {
	for _, asset := range assetAliases {
		for _, alias := range asset.Aliases {
			got, err := Normalize(alias)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", alias, err)
			}
			if got != asset.Canonical {
				t.Errorf("Normalize(%q) = %q, want %q", alias, got, asset.Canonical)
			}
			if DisplayName(alias) != DisplayName(asset.Canonical) {
				t.Errorf("DisplayName(%q) != DisplayName(%q)", alias, asset.Canonical)
			}
		}
	}
}
