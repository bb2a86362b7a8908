package services

import "errors"

// Domain failure taxonomy. These abort an operation before any mutation
// is persisted; the transport layer maps them onto HTTP statuses.
// Expected user-facing violations (self-messaging) are NOT errors: they
// come back as a soft error field on the result instead.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
)
