// Package common defines shared sentinel errors and small helpers used across
// the doxxd backend layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors. ErrInvalidToken is the generic case; the three below
	// distinguish why verification failed.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenMalformed = errors.New("token malformed")
	ErrBadSignature   = errors.New("bad signature")
	ErrTokenExpired   = errors.New("token expired")
)
