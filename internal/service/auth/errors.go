// Package auth provides token issuance and password verification for the
// API's authentication endpoints.
package auth

import "errors"

// Authentication errors returned by the JWT service and password helpers.
var (
	// ErrInvalidToken indicates a malformed token or an invalid signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrWrongTokenType indicates a token of the wrong type was presented,
	// for example a refresh token where an access token is expected.
	ErrWrongTokenType = errors.New("wrong token type")
)
