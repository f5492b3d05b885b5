package domain

import "context"

// CartItem is one product line in a user's cart
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Subtotal returns the line total
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is the full cart for one user
type Cart struct {
	UserID uint       `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// Total returns the cart total across all lines
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Order is the result of a successful checkout
type Order struct {
	OrderID string     `json:"order_id"`
	UserID  uint       `json:"user_id"`
	Items   []CartItem `json:"items"`
	Total   float64    `json:"total"`
}

// CartRepository defines the contract for cart storage. Carts live in Redis,
// so every operation takes a context.
type CartRepository interface {
	Get(ctx context.Context, userID uint) (*Cart, error)
	SetItem(ctx context.Context, userID uint, item CartItem) error
	RemoveItem(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
}
