package repository

import "errors"

// Sentinel errors shared by all repository implementations.
// Handlers map these to HTTP statuses at the API boundary.
var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)
