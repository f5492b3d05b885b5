package command

import (
	"context"
	"fmt"

	"github.com/samuraistore/backend/internal/cart/domain"
	productdomain "github.com/samuraistore/backend/internal/product/domain"
)

// ProductCatalog is the slice of the product repository the cart needs
type ProductCatalog interface {
	FindByID(id uint) (*productdomain.Product, error)
}

// AddItemCommand represents the command to put a product in the cart.
// Adding a product that is already in the cart bumps its quantity.
type AddItemCommand struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// AddItemHandler handles the add item command
type AddItemHandler struct {
	carts   domain.CartRepository
	catalog ProductCatalog
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts domain.CartRepository, catalog ProductCatalog) *AddItemHandler {
	return &AddItemHandler{carts: carts, catalog: catalog}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}
	if cmd.ProductID == 0 {
		return nil, domain.ErrProductIDRequired
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrQuantityInvalid
	}

	product, err := h.catalog.FindByID(cmd.ProductID)
	if err != nil {
		return nil, domain.ErrProductUnavailable
	}
	if !product.IsAvailable() {
		return nil, domain.ErrProductUnavailable
	}

	cart, err := h.carts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	quantity := cmd.Quantity
	for _, item := range cart.Items {
		if item.ProductID == cmd.ProductID {
			quantity += item.Quantity
			break
		}
	}

	if quantity > product.Stock {
		return nil, domain.ErrInsufficientStock
	}

	line := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	}

	if err := h.carts.SetItem(ctx, cmd.UserID, line); err != nil {
		return nil, fmt.Errorf("failed to store cart line: %w", err)
	}

	return h.carts.Get(ctx, cmd.UserID)
}
