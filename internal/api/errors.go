package api

import (
	"errors"
	"net/http"

	"github.com/pathwise/pathwise-api/internal/api/shared"
	"github.com/pathwise/pathwise-api/internal/generation"
	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/pathwise/pathwise-api/internal/service"
	"github.com/pathwise/pathwise-api/internal/service/auth"
	"github.com/pathwise/pathwise-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrProfileNotFound),
		errors.Is(err, store.ErrCourseNotFound),
		errors.Is(err, store.ErrModuleNotFound),
		errors.Is(err, store.ErrLessonNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Continuation cap
	case errors.Is(err, generation.ErrContinuationLimit):
		return http.StatusUnprocessableEntity

	// Upstream model failures
	case errors.Is(err, llm.ErrAuthRequiresOAuth),
		errors.Is(err, llm.ErrTimeout),
		isProviderFailure(err):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, llm.ErrMalformedResponse):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Profile not found"

	case errors.Is(err, store.ErrCourseNotFound):
		return "Course not found"

	case errors.Is(err, store.ErrModuleNotFound):
		return "Module not found"

	case errors.Is(err, store.ErrLessonNotFound):
		return "Lesson not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, generation.ErrContinuationLimit):
		return "Lesson continuation limit reached"

	case errors.Is(err, llm.ErrAuthRequiresOAuth):
		return "Model provider requires OAuth credentials"

	case errors.Is(err, llm.ErrTimeout), isProviderFailure(err):
		return "Model provider unavailable"

	case errors.Is(err, llm.ErrMalformedResponse):
		return "Model returned an unusable response"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, service.ErrPasswordTooShort):
		return "Password must be at least 8 characters"

	default:
		return "An unexpected error occurred"
	}
}

// isProviderFailure reports whether the error stems from a model provider
// call, either a transport failure or the executor exhausting its retries.
func isProviderFailure(err error) bool {
	var provErr *llm.ProviderError
	var execErr *llm.ExecutionError
	return errors.As(err, &provErr) || errors.As(err, &execErr)
}

// HandleServiceError maps a service-layer error to a sanitized HTTP response
// and logs the underlying cause.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
