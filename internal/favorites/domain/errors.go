package domain

import "errors"

var (
	// ErrUnauthenticated is returned when no principal is attached to the request
	ErrUnauthenticated = errors.New("login required")

	// ErrProductIDRequired is returned when the product id is missing or malformed
	ErrProductIDRequired = errors.New("product id is required")
)
