// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates a malformed entity identifier.
	ErrInvalidID = errors.New("invalid id")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., admin already created).
	ErrAlreadyExists = errors.New("already exists")

	// ErrRegistrationRestricted indicates a sign-up attempt with a non-allow-listed email.
	ErrRegistrationRestricted = errors.New("registration is restricted to authorized users only")

	// ErrAccessRestricted indicates a sign-in attempt with a non-allow-listed email.
	ErrAccessRestricted = errors.New("access is restricted to authorized users only")

	// ErrInvalidCredentials indicates a wrong password for a known identity.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
