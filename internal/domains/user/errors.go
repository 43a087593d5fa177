package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level (Business logic) errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)
