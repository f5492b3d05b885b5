package usecase_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuraistore/backend/internal/user/domain"
	"github.com/samuraistore/backend/internal/user/usecase/command"
	"github.com/samuraistore/backend/internal/user/usecase/query"
	"github.com/samuraistore/backend/pkg/auth"
)

// memoryUserRepository is a thread-safe in-memory UserRepository.
type memoryUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*domain.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{nextID: 1, users: make(map[uint]*domain.User)}
}

func (m *memoryUserRepository) Create(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memoryUserRepository) FindByID(id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *memoryUserRepository) FindByEmail(email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memoryUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

func (m *memoryUserRepository) Update(user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memoryUserRepository) Delete(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memoryUserRepository) Count() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memoryUserRepository) CountByRole(role string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, user := range m.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func registerTestUser(t *testing.T, repo domain.UserRepository, email string) *domain.User {
	t.Helper()
	user, err := command.NewRegisterUserHandler(repo).Handle(command.RegisterUserCommand{
		Name:     "Taro Yamada",
		Email:    email,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterUser(t *testing.T) {
	repo := newMemoryUserRepository()
	user := registerTestUser(t, repo, "taro@example.com")

	assert.NotZero(t, user.ID)
	assert.Equal(t, "taro@example.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "supersecret", user.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "supersecret"))
}

func TestRegisterUser_Validation(t *testing.T) {
	repo := newMemoryUserRepository()
	handler := command.NewRegisterUserHandler(repo)

	_, err := handler.Handle(command.RegisterUserCommand{Name: "", Email: "a@b.co", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = handler.Handle(command.RegisterUserCommand{Name: "Taro", Email: "not-an-email", Password: "longenough"})
	assert.ErrorIs(t, err, domain.ErrEmailInvalid)

	_, err = handler.Handle(command.RegisterUserCommand{Name: "Taro", Email: "a@b.co", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "taro@example.com")

	_, err := command.NewRegisterUserHandler(repo).Handle(command.RegisterUserCommand{
		Name:     "Another",
		Email:    "taro@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginUser(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "taro@example.com")

	resp, err := command.NewLoginUserHandler(repo).Handle(command.LoginUserCommand{
		Email:    "taro@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLoginUser_BadCredentials(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "taro@example.com")
	handler := command.NewLoginUserHandler(repo)

	_, err := handler.Handle(command.LoginUserCommand{Email: "taro@example.com", Password: "wrongpassword"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = handler.Handle(command.LoginUserCommand{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateUser_ChangesOnlyProvidedFields(t *testing.T) {
	repo := newMemoryUserRepository()
	user := registerTestUser(t, repo, "taro@example.com")

	updated, err := command.NewUpdateUserHandler(repo).Handle(command.UpdateUserCommand{
		ID:   user.ID,
		Name: "Jiro Yamada",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jiro Yamada", updated.Name)
	assert.Equal(t, "taro@example.com", updated.Email)
}

func TestChangeRole(t *testing.T) {
	repo := newMemoryUserRepository()
	user := registerTestUser(t, repo, "taro@example.com")

	updated, err := command.NewChangeRoleHandler(repo).Handle(command.ChangeRoleCommand{
		UserID: user.ID,
		Role:   domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())

	_, err = command.NewChangeRoleHandler(repo).Handle(command.ChangeRoleCommand{
		UserID: user.ID,
		Role:   "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestGetStats(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "a@example.com")
	user := registerTestUser(t, repo, "b@example.com")

	_, err := command.NewChangeRoleHandler(repo).Handle(command.ChangeRoleCommand{
		UserID: user.ID,
		Role:   domain.RoleAdmin,
	})
	require.NoError(t, err)

	stats, err := query.NewGetStatsHandler(repo).Handle(query.GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.AdminCount)
	assert.Equal(t, int64(1), stats.UserCount)
}

func TestDeleteUser(t *testing.T) {
	repo := newMemoryUserRepository()
	user := registerTestUser(t, repo, "taro@example.com")

	require.NoError(t, command.NewDeleteUserHandler(repo).Handle(command.DeleteUserCommand{ID: user.ID}))

	_, err := query.NewGetUserHandler(repo).Handle(query.GetUserQuery{ID: user.ID})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = command.NewDeleteUserHandler(repo).Handle(command.DeleteUserCommand{ID: user.ID})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
