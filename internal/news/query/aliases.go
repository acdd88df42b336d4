package query

import "strings"

// AssetAlias groups the ticker symbols and abbreviations that resolve to one
// canonical asset name. The same table feeds cache-key derivation and display
// formatting so the two can never drift apart.
type AssetAlias struct {
	Canonical string   // canonical search term and cache/stats key
	Display   string   // presentation name
	Aliases   []string // tickers and common abbreviations
}

var assetAliases = []AssetAlias{
	{Canonical: "bitcoin", Display: "BITCOIN", Aliases: []string{"btc"}},
	{Canonical: "ethereum", Display: "ETHEREUM", Aliases: []string{"eth", "ether"}},
	{Canonical: "ripple", Display: "RIPPLE", Aliases: []string{"xrp"}},
	{Canonical: "litecoin", Display: "LITECOIN", Aliases: []string{"ltc"}},
	{Canonical: "dogecoin", Display: "DOGECOIN", Aliases: []string{"doge"}},
	{Canonical: "cardano", Display: "CARDANO", Aliases: []string{"ada"}},
	{Canonical: "polkadot", Display: "POLKADOT", Aliases: []string{"dot"}},
	{Canonical: "solana", Display: "SOLANA", Aliases: []string{"sol"}},
	{Canonical: "chainlink", Display: "CHAINLINK", Aliases: []string{"link"}},
	{Canonical: "uniswap", Display: "UNISWAP", Aliases: []string{"uni"}},
}

var (
	aliasToCanonical   map[string]string
	canonicalToDisplay map[string]string
)

func init() {
	aliasToCanonical = make(map[string]string)
	canonicalToDisplay = make(map[string]string)
	for _, a := range assetAliases {
		canonicalToDisplay[a.Canonical] = a.Display
		for _, alias := range a.Aliases {
			aliasToCanonical[alias] = a.Canonical
		}
	}
}

// resolveAlias maps a ticker or abbreviation to its canonical asset name.
// Returns the input unchanged when no alias matches.
func resolveAlias(term string) string {
	if canonical, ok := aliasToCanonical[term]; ok {
		return canonical
	}
	// Retry with internal whitespace removed, covering multi-word tickers
	// entered with spaces ("b t c").
	compact := strings.ReplaceAll(term, " ", "")
	if canonical, ok := aliasToCanonical[compact]; ok {
		return canonical
	}
	return term
}

// DisplayName returns the presentation name for a term. Both canonical names
// and raw tickers resolve through the shared alias table; unknown terms are
// uppercased as-is.
func DisplayName(term string) string {
	canonical := resolveAlias(strings.ToLower(strings.TrimSpace(term)))
	if display, ok := canonicalToDisplay[canonical]; ok {
		return display
	}
	return strings.ToUpper(canonical)
}
