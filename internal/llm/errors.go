package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth means the credential was rejected or is missing
	ErrAuth = errors.New("llm authentication failed")

	// ErrRateLimit means the provider throttled the request
	ErrRateLimit = errors.New("llm rate limit exceeded")

	// ErrTimeout means the call exceeded its deadline
	ErrTimeout = errors.New("llm call timed out")

	// ErrEmptyResponse means the provider answered without any text
	ErrEmptyResponse = errors.New("llm returned an empty response")
)

// sentinelForStatus maps an HTTP status to an error class, or nil when none applies
func sentinelForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusTooManyRequests:
		return ErrRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrTimeout
	default:
		return nil
	}
}

// statusError builds an API error that wraps the matching sentinel
func statusError(provider string, status int, msg string) error {
	if sentinel := sentinelForStatus(status); sentinel != nil {
		return fmt.Errorf("%s API error (%d): %s: %w", provider, status, msg, sentinel)
	}
	return fmt.Errorf("%s API error (%d): %s", provider, status, msg)
}

// wrapCallError classifies transport errors. A deadline becomes ErrTimeout.
func wrapCallError(provider string, ctx context.Context, err error) error {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrRateLimit) || errors.Is(err, ErrTimeout) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", provider, ErrTimeout, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w: %v", provider, ErrTimeout, err)
	}
	return fmt.Errorf("%s API error: %w", provider, err)
}

// Retryable reports whether a failed call may succeed if repeated
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimit) || errors.Is(err, ErrTimeout)
}
