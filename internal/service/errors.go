package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrInvalidCredentials indicates a login attempt with an unknown email
	// or a wrong password. The two cases are deliberately indistinguishable.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordTooShort indicates a registration password below the
	// minimum length. API layer should map this to HTTP 400 Bad Request.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)
