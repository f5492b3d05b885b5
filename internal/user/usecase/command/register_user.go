package command

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/samuraistore/backend/internal/user/domain"
	"github.com/samuraistore/backend/pkg/auth"
)

// minPasswordLength matches the storefront's registration form rule.
const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterUserCommand represents the command to register a new account
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string // Optional, defaults to "user"
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)

	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrEmailInvalid
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	if existing, _ := h.repo.FindByEmail(email); existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	user := &domain.User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
