// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal         = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongOldPassword   = errors.New("wrong old password")

	// Token verification errors. The three outcomes stay distinct so that
	// logs can tell tampering from expiry, even though all map to 401.
	ErrMalformedToken = errors.New("malformed token")
	ErrBadSignature   = errors.New("bad token signature")
	ErrTokenExpired   = errors.New("token expired")

	// ErrUnknownSubject means the token verified but the account it names
	// no longer exists.
	ErrUnknownSubject = errors.New("unknown subject")

	// Validation errors.
	ErrInvalidOperation = errors.New("invalid operation type")
	ErrDivisionByZero   = errors.New("division by zero")
)
