// Package news implements the cache-aside query-resolution pipeline: a raw
// query is canonicalized, served from cache on hit, and on miss resolved
// through the news provider, classified, ordered and written back, with
// usage statistics maintained for every lookup.
package news

import (
	"errors"

	"github.com/coinpulse/crypto-news-search/internal/news/provider"
	"github.com/coinpulse/crypto-news-search/internal/news/query"
)

// Pipeline error kinds, re-exported from the packages that produce them so
// callers can branch on a single import. The engine wraps but never converts
// these, so errors.Is/errors.As always see the original kind.
var (
	ErrInvalidQuery      = query.ErrInvalidQuery
	ErrMissingCredential = provider.ErrMissingCredential
	ErrAuthentication    = provider.ErrAuthentication
	ErrTransport         = provider.ErrTransport
	ErrMalformedPayload  = provider.ErrMalformedPayload
)

// Kind maps a pipeline error to its stable wire identifier.
func Kind(err error) string {
	var httpErr *provider.HTTPError
	var providerErr *provider.ProviderError
	var dateErr *provider.DateParseError

	switch {
	case errors.Is(err, ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, ErrAuthentication):
		return "authentication_error"
	case errors.Is(err, ErrTransport):
		return "transport_error"
	case errors.Is(err, ErrMalformedPayload):
		return "malformed_payload"
	case errors.As(err, &httpErr):
		return "provider_http_error"
	case errors.As(err, &providerErr):
		return "provider_reported_error"
	case errors.As(err, &dateErr):
		return "date_parse_error"
	default:
		return "internal_error"
	}
}
