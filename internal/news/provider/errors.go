package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential reports an unset provider API key. Checked before
	// any network call; operator-correctable, never retried.
	ErrMissingCredential = errors.New("news provider API key is not configured")

	// ErrAuthentication reports a credential the provider explicitly
	// rejected. Not retryable.
	ErrAuthentication = errors.New("news provider rejected the API key")

	// ErrTransport reports a network-level failure (DNS, timeout, reset).
	// Safe for a caller to retry with backoff.
	ErrTransport = errors.New("news provider unreachable")

	// ErrMalformedPayload reports a response body that is not parseable.
	ErrMalformedPayload = errors.New("news provider returned an unparseable payload")
)

// HTTPError is a non-success transport status from the provider that is not
// the known invalid-key rejection.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("news provider returned status %d: %s", e.Status, e.Body)
}

// ProviderError carries the provider's own error envelope
// ({"status":"error","message":...}).
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("news provider reported an error: %s", e.Message)
}

// DateParseError reports a publish date that matched none of the known
// formats. Fatal for the whole batch: the provider formats dates uniformly,
// so one bad date means the contract changed and silently dropping items
// would hide it.
type DateParseError struct {
	Raw string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable publish date %q", e.Raw)
}
