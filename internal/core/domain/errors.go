package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound indicates the source account does not exist or is
	// not accessible with the configured credentials.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoRepositories indicates the fetch produced nothing to classify.
	ErrNoRepositories = errors.New("no starred repositories")

	// ErrAuthRequired indicates a required credential is missing.
	ErrAuthRequired = errors.New("authentication required")

	// ErrClassifierUnavailable indicates the classification service is not
	// configured. A run cannot start without one.
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)
