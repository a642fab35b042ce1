package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any network activity when no API key is configured.
	ErrMissingAPIKey = errors.New("API key is missing from environment variables")

	// ErrFetchFailed wraps transport-level failures (DNS, timeout, connection reset).
	ErrFetchFailed = errors.New("failed to fetch AI response")
)

// StatusError reports a non-success HTTP status from the provider.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.StatusCode)
}
