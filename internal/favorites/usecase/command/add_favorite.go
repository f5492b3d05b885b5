package command

import (
	"fmt"

	"github.com/samuraistore/backend/internal/favorites/domain"
)

// AddFavoriteCommand represents the command to favorite a product
type AddFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// AddFavoriteHandler handles the add favorite command
type AddFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle executes the add favorite command. Adding a product that is
// already favorited succeeds without creating a second row, so clients may
// retry on an ambiguous network failure.
func (h *AddFavoriteHandler) Handle(cmd AddFavoriteCommand) error {
	if cmd.UserID == 0 {
		return domain.ErrUnauthenticated
	}
	if cmd.ProductID == 0 {
		return domain.ErrProductIDRequired
	}

	if err := h.repo.InsertIfAbsent(cmd.UserID, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}
