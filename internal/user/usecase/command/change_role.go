package command

import (
	"fmt"
	"time"

	"github.com/samuraistore/backend/internal/user/domain"
)

// ChangeRoleCommand represents the command to change a user's role
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles role change command
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) (*domain.User, error) {
	if cmd.Role != domain.RoleUser && cmd.Role != domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = cmd.Role
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	return user, nil
}
