package query

import (
	"fmt"

	"github.com/samuraistore/backend/internal/user/domain"
)

// defaultListLimit caps unbounded admin listings.
const defaultListLimit = 50

// ListUsersQuery represents the query to list accounts with pagination
type ListUsersQuery struct {
	Limit  int
	Offset int
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(query ListUsersQuery) ([]domain.User, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	users, err := h.repo.FindAll(limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
