package service

import "errors"

// Sentinel errors for the handler layer to map onto HTTP statuses. The
// forbidden message deliberately says nothing about whether the target
// user or its records exist.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("not authorized to access records for other users")
)
