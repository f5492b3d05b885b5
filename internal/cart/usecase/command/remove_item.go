package command

import (
	"context"
	"fmt"

	"github.com/samuraistore/backend/internal/cart/domain"
)

// RemoveItemCommand represents the command to drop a product line from the cart
type RemoveItemCommand struct {
	UserID    uint
	ProductID uint
}

// RemoveItemHandler handles the remove item command
type RemoveItemHandler struct {
	carts domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle executes the remove item command. Removing a line that is not in
// the cart succeeds.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if cmd.ProductID == 0 {
		return nil, domain.ErrProductIDRequired
	}

	if err := h.carts.RemoveItem(ctx, cmd.UserID, cmd.ProductID); err != nil {
		return nil, fmt.Errorf("failed to remove cart line: %w", err)
	}

	return h.carts.Get(ctx, cmd.UserID)
}
