package query

import (
	"fmt"

	"github.com/samuraistore/backend/internal/favorites/domain"
)

// ListFavoritesQuery lists the caller's favorites, newest first
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles the list favorites query
type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle executes the list favorites query
func (h *ListFavoritesHandler) Handle(q ListFavoritesQuery) ([]domain.FavoriteProjection, error) {
	if q.UserID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	projections, err := h.repo.ListByUser(q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	if projections == nil {
		projections = []domain.FavoriteProjection{}
	}
	return projections, nil
}
