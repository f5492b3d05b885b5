package query

import (
	"fmt"

	"github.com/samuraistore/backend/internal/product/domain"
)

// Home page section sizes
const (
	pickUpCount     = 3
	newArrivalCount = 4
	hotItemCount    = 4
)

// HomeSectionsQuery represents the query for the storefront's home page
type HomeSectionsQuery struct{}

// HomeSections groups the three product rails shown on the home page
type HomeSections struct {
	PickUp     []domain.Product `json:"pick_up"`
	NewArrival []domain.Product `json:"new_arrival"`
	HotItems   []domain.Product `json:"hot_items"`
}

// HomeSectionsHandler handles the home sections query
type HomeSectionsHandler struct {
	repo domain.ProductRepository
}

// NewHomeSectionsHandler creates a new home sections handler
func NewHomeSectionsHandler(repo domain.ProductRepository) *HomeSectionsHandler {
	return &HomeSectionsHandler{repo: repo}
}

// Handle executes the home sections query. Pick-up is ranked by sales count,
// new arrivals by creation time, hot items are a random sample of featured
// products.
func (h *HomeSectionsHandler) Handle(query HomeSectionsQuery) (*HomeSections, error) {
	pickUp, err := h.repo.FindTopSellers(pickUpCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load pick up section: %w", err)
	}

	newArrival, err := h.repo.FindNewest(newArrivalCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load new arrival section: %w", err)
	}

	hotItems, err := h.repo.FindRandomFeatured(hotItemCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load hot items section: %w", err)
	}

	return &HomeSections{
		PickUp:     pickUp,
		NewArrival: newArrival,
		HotItems:   hotItems,
	}, nil
}
