// Package query canonicalizes raw user input into the search term used for
// cache keys, usage statistics and provider requests.
package query

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidQuery reports input that is empty after trimming.
var ErrInvalidQuery = errors.New("search query is empty")

// domainQualifier biases provider results toward crypto coverage. It is
// appended to the provider-facing query only, never to cache/stats keys.
const domainQualifier = " cryptocurrency"

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize derives the canonical search term from raw user input: trim,
// lowercase, accent folding, then alias resolution through the shared ticker
// table. The returned term is the single source of truth for cache and stats
// keys.
func Normalize(raw string) (string, error) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return "", ErrInvalidQuery
	}

	term = strings.ToLower(term)
	term = removeAccents(term)
	term = whitespaceRE.ReplaceAllString(term, " ")

	return resolveAlias(term), nil
}

// ProviderQuery builds the provider-facing query string for a canonical term.
func ProviderQuery(canonical string) string {
	return canonical + domainQualifier
}

// removeAccents strips diacritical marks so accented variants of an asset
// name canonicalize identically.
func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
