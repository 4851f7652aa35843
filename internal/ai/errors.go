package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies a generation failure so the dashboard can decide
// whether to retry, surface, or abort.
type Kind string

const (
	// KindValidation means the request itself was malformed (recoverable, shown inline).
	KindValidation Kind = "validation"
	// KindConfig means credentials are missing (startup fatal).
	KindConfig Kind = "config"
	// KindAuth means the AI service rejected the key (fatal per request, not retried).
	KindAuth Kind = "auth"
	// KindTransient means timeout or rate limit (eligible for bounded retry).
	KindTransient Kind = "transient"
	// KindService means an unexpected response from the AI service (surfaced, not retried).
	KindService Kind = "service"
)

// Error is the tagged error type returned from every boundary-crossing call.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind; unclassified errors count as service errors.
func KindOf(err error) Kind {
	var aiErr *Error
	if errors.As(err, &aiErr) {
		return aiErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}
	return KindService
}

// IsTransient reports whether the error is worth retrying.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}

// statusError classifies an HTTP status code from a provider API error.
func statusError(provider string, code int, err error) *Error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindAuth, Message: provider + " rejected the API key", Err: err}
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return &Error{Kind: KindTransient, Message: provider + " rate limited the request", Err: err}
	default:
		return &Error{Kind: KindService, Message: fmt.Sprintf("%s API error (status %d)", provider, code), Err: err}
	}
}

// networkError classifies a transport-level failure. Timeouts and cancelled
// deadlines are transient; everything else is a service error.
func networkError(provider string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTransient, Message: provider + " request timed out", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTransient, Message: provider + " request timed out", Err: err}
	}
	return &Error{Kind: KindService, Message: provider + " request failed", Err: err}
}
