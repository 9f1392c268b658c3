package extractor

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// defaultRetryAfter is the backoff applied when a provider rate limits us
// without saying for how long.
const defaultRetryAfter = 60 * time.Second

// RateLimitError reports that an extraction provider answered HTTP 429. The
// fallback chain reads RetryAfter to decide how long to keep that provider's
// circuit open.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("extraction provider %s rate limited, retry in %s: %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// NewRateLimitError builds a RateLimitError, applying the default backoff
// when retryAfterSecs is zero or negative.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	retryAfter := time.Duration(retryAfterSecs) * time.Second
	if retryAfter <= 0 {
		retryAfter = defaultRetryAfter
	}
	return &RateLimitError{Provider: provider, RetryAfter: retryAfter, Err: err}
}

// ParseRetryAfterHeader converts a Retry-After header into seconds. Both the
// delta-seconds and HTTP-date forms are accepted; anything else maps to 0 so
// the caller falls back to the default backoff.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		if secs < 0 {
			return 0
		}
		return secs
	}
	if at, err := http.ParseTime(val); err == nil {
		if secs := int(time.Until(at).Seconds()); secs > 0 {
			return secs
		}
	}
	return 0
}
