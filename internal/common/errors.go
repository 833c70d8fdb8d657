// Package common defines shared sentinel errors used across the application
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrorDuplicateKey = errors.New("duplicate key")

	// Service-level errors.
	ErrorValidation = errors.New("validation error")
	ErrorInternal   = errors.New("internal error")

	// Auth errors. ErrorInvalidCredentials deliberately covers both
	// "unknown user" and "wrong password": callers must not be able to
	// tell which check failed.
	ErrorInvalidCredentials = errors.New("invalid username or password")
	ErrorUnauthenticated    = errors.New("unauthenticated")

	// Session token errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
