package services

import "errors"

// Service-level error kinds. Handlers map these to HTTP statuses with
// errors.Is; repository-level ErrNotFound propagates through unchanged.
var (
	// ErrInvalidCredentials is returned for any login failure. It is
	// deliberately identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks malformed or self-contradictory input.
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is returned when a registration reuses an email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrConsistency marks a join that found no parent record. It indicates
	// a seeding bug and must never surface during normal operation.
	ErrConsistency = errors.New("store consistency violation")
)
