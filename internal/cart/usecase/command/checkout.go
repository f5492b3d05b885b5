package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/samuraistore/backend/internal/cart/domain"
	"github.com/samuraistore/backend/kafka"
	"github.com/samuraistore/backend/pkg/logger"
)

// OrderEventPublisher is the slice of the Kafka publisher checkout needs
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CheckoutCommand represents the command to turn the cart into an order
type CheckoutCommand struct {
	UserID uint
}

// CheckoutHandler handles the checkout command
type CheckoutHandler struct {
	carts     domain.CartRepository
	publisher OrderEventPublisher
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts domain.CartRepository, publisher OrderEventPublisher) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, publisher: publisher}
}

// Handle executes the checkout command. One order-placed event is emitted
// per cart line; the sales counters downstream are updated by the consumer.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	cart, err := h.carts.Get(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, domain.ErrCartEmpty
	}

	orderID := "ORD-" + uuid.NewString()[:8]

	if h.publisher != nil {
		for _, item := range cart.Items {
			event := kafka.OrderPlacedEvent{
				OrderID:   orderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UserID:    cmd.UserID,
				Price:     item.Price,
			}
			if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
				// The order still goes through; the ranking just lags.
				logger.Error(ctx).
					Err(err).
					Str("order_id", orderID).
					Uint("product_id", item.ProductID).
					Msg("Failed to publish order placed event")
			}
		}
	}

	order := &domain.Order{
		OrderID: orderID,
		UserID:  cmd.UserID,
		Items:   cart.Items,
		Total:   cart.Total(),
	}

	if err := h.carts.Clear(ctx, cmd.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	return order, nil
}
