package command

import (
	"fmt"

	"github.com/samuraistore/backend/internal/product/domain"
)

// RecordSaleCommand is applied when an order-placed event arrives for a
// product line. It feeds the best-seller ranking on the home page.
type RecordSaleCommand struct {
	ProductID uint
	Quantity  int
}

// RecordSaleHandler handles sale recording command
type RecordSaleHandler struct {
	repo domain.ProductRepository
}

// NewRecordSaleHandler creates a new record sale handler
func NewRecordSaleHandler(repo domain.ProductRepository) *RecordSaleHandler {
	return &RecordSaleHandler{repo: repo}
}

// Handle executes the record sale command
func (h *RecordSaleHandler) Handle(cmd RecordSaleCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("invalid product id")
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	if err := h.repo.RecordSale(cmd.ProductID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}

	return nil
}
