package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies a failed request for the retry policy.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx replies.
	KindUnavailable ErrorKind = iota
	// KindRateLimited is a 429 reply.
	KindRateLimited
	// KindRejected is any other 4xx reply, e.g. a bad key or model name.
	KindRejected
	// KindInvalidOutput is a reply that is not the requested JSON.
	KindInvalidOutput
	// KindTruncated is a reply cut off by the token limit.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "request rejected"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "output truncated"
	default:
		return "unavailable"
	}
}

// Error is returned by every provider in this package.
type Error struct {
	Kind     ErrorKind
	Provider string
	// RetryAfter is the server's requested delay for KindRateLimited.
	RetryAfter time.Duration
	// Content holds the offending reply for KindInvalidOutput and
	// KindTruncated.
	Content json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// statusError classifies an HTTP failure reported by an SDK. A zero status
// means the request never got a reply.
func statusError(provider string, status int, err error) *Error {
	kind := KindUnavailable
	switch {
	case status == http.StatusTooManyRequests:
		kind = KindRateLimited
	case status == http.StatusRequestTimeout:
	case status >= 400 && status < 500:
		kind = KindRejected
	}
	return &Error{Kind: kind, Provider: provider, Err: err}
}

// retryAfter reads a Retry-After header given in seconds. Other forms are
// ignored and leave the backoff to the retry policy.
func retryAfter(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
