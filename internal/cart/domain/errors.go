package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("login required")
	ErrProductIDRequired  = errors.New("product id is required")
	ErrQuantityInvalid    = errors.New("quantity must be greater than zero")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCartEmpty          = errors.New("cart is empty")
)
