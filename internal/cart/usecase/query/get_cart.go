package query

import (
	"context"
	"fmt"

	"github.com/samuraistore/backend/internal/cart/domain"
)

// GetCartQuery represents the query for the caller's cart
type GetCartQuery struct {
	UserID uint
}

// GetCartHandler handles the get cart query
type GetCartHandler struct {
	carts domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query. A user without a cart gets an empty one.
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*domain.Cart, error) {
	if q.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	cart, err := h.carts.Get(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}
