// Package service provides business logic for the application.
package service

import "errors"

// Service errors. Handlers map these to response codes: validation errors
// are caller-fixable (400), conflicts are duplicate natural keys (409), and
// store-unavailable wraps infrastructure failures (503).
var (
	ErrInvalidName      = errors.New("name is required")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrInvalidPrice     = errors.New("price is required and must be zero or positive")
	ErrInvalidInput     = errors.New("input violates a store constraint")
	ErrEmailTaken       = errors.New("email already registered")
	ErrNameTaken        = errors.New("product name already in catalog")
	ErrStoreUnavailable = errors.New("store unavailable")
)
