package domain

import "errors"

// Validation and lookup errors surfaced to the HTTP layer
var (
	ErrNameRequired       = errors.New("name is required")
	ErrEmailInvalid       = errors.New("a valid email address is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
)
