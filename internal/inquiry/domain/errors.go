package domain

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailInvalid    = errors.New("a valid email is required")
	ErrMessageRequired = errors.New("message is required")
	ErrMessageTooLong  = errors.New("message is too long")
)
