package command

import (
	"fmt"

	"github.com/samuraistore/backend/internal/favorites/domain"
)

// RemoveFavoriteCommand represents the command to unfavorite a product
type RemoveFavoriteCommand struct {
	UserID    uint
	ProductID uint
}

// RemoveFavoriteHandler handles the remove favorite command
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command. The delete is scoped to the
// caller's own row; removing a pair that does not exist succeeds.
func (h *RemoveFavoriteHandler) Handle(cmd RemoveFavoriteCommand) error {
	if cmd.UserID == 0 {
		return domain.ErrUnauthenticated
	}
	if cmd.ProductID == 0 {
		return domain.ErrProductIDRequired
	}

	if err := h.repo.Delete(cmd.UserID, cmd.ProductID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
