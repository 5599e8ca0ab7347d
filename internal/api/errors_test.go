package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/pathwise/pathwise-api/internal/generation"
	"github.com/pathwise/pathwise-api/internal/llm"
	"github.com/pathwise/pathwise-api/internal/service"
	"github.com/pathwise/pathwise-api/internal/service/auth"
	"github.com/pathwise/pathwise-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"profile not found", store.ErrProfileNotFound, http.StatusNotFound},
		{"course not found", store.ErrCourseNotFound, http.StatusNotFound},
		{"lesson not found wrapped", fmt.Errorf("failed to load lesson: %w", store.ErrLessonNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"duplicate", store.ErrDuplicate, http.StatusConflict},
		{"continuation limit", generation.ErrContinuationLimit, http.StatusUnprocessableEntity},
		{"oauth required", llm.ErrAuthRequiresOAuth, http.StatusBadGateway},
		{"model timeout", llm.ErrTimeout, http.StatusBadGateway},
		{"provider error", llm.NewProviderError("openai", 500, "boom", nil), http.StatusBadGateway},
		{"execution error", &llm.ExecutionError{Attempts: 3, Err: errors.New("refused")}, http.StatusBadGateway},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"password too short", service.ErrPasswordTooShort, http.StatusBadRequest},
		{"malformed response", llm.ErrMalformedResponse, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("known errors map to fixed messages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Invalid credentials", GetSafeErrorMessage(service.ErrInvalidCredentials))
		assert.Equal(t, "Course not found", GetSafeErrorMessage(store.ErrCourseNotFound))
		assert.Equal(t, "Lesson continuation limit reached", GetSafeErrorMessage(generation.ErrContinuationLimit))
		assert.Equal(t, "Model provider unavailable", GetSafeErrorMessage(llm.ErrTimeout))
	})

	t.Run("internal details never leak", func(t *testing.T) {
		t.Parallel()
		err := errors.New("pq: connection refused on 10.0.0.5")
		msg := GetSafeErrorMessage(err)
		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "10.0.0.5")
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})
}
