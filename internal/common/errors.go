// Package common defines sentinel errors shared by the repository, service
// and transport layers of TaskFlow. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks store failures that are transient and safe for
	// the caller to retry. It must never be collapsed into an
	// authentication failure.
	ErrUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrInternal   = errors.New("internal error")
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// on login. The two cases share one sentinel on purpose so responses
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token verification failure: bad
	// signature, malformed structure, or expiry.
	ErrInvalidToken = errors.New("invalid token")
)
