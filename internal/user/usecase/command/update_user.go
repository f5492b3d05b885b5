package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/samuraistore/backend/internal/user/domain"
	"github.com/samuraistore/backend/pkg/auth"
)

// UpdateUserCommand represents the command to update profile fields.
// Empty fields are left unchanged.
type UpdateUserCommand struct {
	ID       uint
	Name     string
	Email    string
	Password string
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if name := strings.TrimSpace(cmd.Name); name != "" {
		user.Name = name
	}

	if email := strings.TrimSpace(cmd.Email); email != "" && email != user.Email {
		if !emailPattern.MatchString(email) {
			return nil, domain.ErrEmailInvalid
		}
		if existing, _ := h.repo.FindByEmail(email); existing != nil && existing.ID != user.ID {
			return nil, domain.ErrEmailTaken
		}
		user.Email = email
	}

	if cmd.Password != "" {
		if len(cmd.Password) < minPasswordLength {
			return nil, domain.ErrPasswordTooShort
		}
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
