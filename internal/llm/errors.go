package llm

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across provider variants and the executor.
var (
	// ErrMalformedResponse is returned when no JSON object can be recovered
	// from a model response.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrTimeout is returned when a provider call does not settle within the
	// configured budget. The underlying call is abandoned, not cancelled;
	// its eventual result is discarded.
	ErrTimeout = errors.New("model call timed out")

	// ErrAuthRequiresOAuth is returned when a backend rejects key-based
	// credentials or a model known to require OAuth is requested. This is a
	// configuration error and is never retried.
	ErrAuthRequiresOAuth = errors.New(
		"model requires OAuth credentials: use an API-key compatible model or configure OAuth")
)

// ProviderError represents a transport-level failure from a model backend:
// DNS, connection refusal, or a non-2xx response.
type ProviderError struct {
	// Provider is the variant name (openai, google, perplexity, ollama).
	Provider string
	// StatusCode is the HTTP status, if one was received.
	StatusCode int
	// Body is the response body accompanying a non-2xx status, if any.
	Body string
	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface for ProviderError.
func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s provider error %d: %s", e.Provider, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s provider error %d", e.Provider, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s provider error", e.Provider)
	}
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError for a transport failure.
func NewProviderError(provider string, statusCode int, body string, err error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

// ExecutionError is the terminal failure of the resilient executor after all
// attempts are exhausted. It wraps the last observed error.
type ExecutionError struct {
	// Attempts is the total number of attempts made, including the first.
	Attempts int
	// Err is the last error observed.
	Err error
}

// Error implements the error interface for ExecutionError.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("model call failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
