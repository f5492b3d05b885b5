package query

import (
	"fmt"

	"github.com/samuraistore/backend/internal/favorites/domain"
)

// CheckFavoriteQuery asks whether the user has favorited a product
type CheckFavoriteQuery struct {
	UserID    uint
	ProductID uint
}

// CheckFavoriteHandler handles the check favorite query
type CheckFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewCheckFavoriteHandler creates a new check favorite handler
func NewCheckFavoriteHandler(repo domain.FavoriteRepository) *CheckFavoriteHandler {
	return &CheckFavoriteHandler{repo: repo}
}

// Handle executes the check favorite query. Absence of a row means "not
// favorited", not an error.
func (h *CheckFavoriteHandler) Handle(q CheckFavoriteQuery) (bool, error) {
	if q.UserID == 0 {
		return false, domain.ErrUnauthenticated
	}

	found, err := h.repo.Exists(q.UserID, q.ProductID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return found, nil
}
