package services

import "errors"

// Sentinel errors the controllers translate into client-visible responses.
// Everything else that escapes a service is an internal failure.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidRange = errors.New("from must not be after to")
	ErrZeroAmount   = errors.New("amount cannot be zero")
)
