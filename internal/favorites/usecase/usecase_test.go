package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuraistore/backend/internal/favorites/domain"
	"github.com/samuraistore/backend/internal/favorites/usecase/command"
	"github.com/samuraistore/backend/internal/favorites/usecase/query"
)

// memoryFavoriteRepository is a thread-safe in-memory implementation of
// domain.FavoriteRepository with set semantics, mirroring the unique
// (user_id, product_id) index of the real table.
type memoryFavoriteRepository struct {
	mu    sync.Mutex
	rows  map[[2]uint]time.Time
	calls int
}

func newMemoryFavoriteRepository() *memoryFavoriteRepository {
	return &memoryFavoriteRepository{rows: make(map[[2]uint]time.Time)}
}

func (m *memoryFavoriteRepository) Exists(userID, productID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	_, ok := m.rows[[2]uint{userID, productID}]
	return ok, nil
}

func (m *memoryFavoriteRepository) InsertIfAbsent(userID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	key := [2]uint{userID, productID}
	if _, ok := m.rows[key]; !ok {
		m.rows[key] = time.Now()
	}
	return nil
}

func (m *memoryFavoriteRepository) Delete(userID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	delete(m.rows, [2]uint{userID, productID})
	return nil
}

func (m *memoryFavoriteRepository) ListByUser(userID uint) ([]domain.FavoriteProjection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var out []domain.FavoriteProjection
	for key, created := range m.rows {
		if key[0] == userID {
			out = append(out, domain.FavoriteProjection{
				UserID:    key[0],
				ProductID: key[1],
				CreatedAt: created,
			})
		}
	}
	return out, nil
}

func (m *memoryFavoriteRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *memoryFavoriteRepository) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestAddFavorite_IsIdempotent(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	handler := command.NewAddFavoriteHandler(repo)

	cmd := command.AddFavoriteCommand{UserID: 1, ProductID: 42}
	require.NoError(t, handler.Handle(cmd))
	require.NoError(t, handler.Handle(cmd))

	assert.Equal(t, 1, repo.count(), "adding the same pair twice must leave one row")
}

func TestRemoveFavorite_AbsentPairSucceeds(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	handler := command.NewRemoveFavoriteHandler(repo)

	err := handler.Handle(command.RemoveFavoriteCommand{UserID: 1, ProductID: 42})
	assert.NoError(t, err)
	assert.Equal(t, 0, repo.count())
}

func TestFavorites_OwnershipIsolation(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	addHandler := command.NewAddFavoriteHandler(repo)
	removeHandler := command.NewRemoveFavoriteHandler(repo)
	checkHandler := query.NewCheckFavoriteHandler(repo)

	require.NoError(t, addHandler.Handle(command.AddFavoriteCommand{UserID: 1, ProductID: 42}))
	require.NoError(t, addHandler.Handle(command.AddFavoriteCommand{UserID: 2, ProductID: 42}))

	// user 2 removing product 42 must not touch user 1's row
	require.NoError(t, removeHandler.Handle(command.RemoveFavoriteCommand{UserID: 2, ProductID: 42}))

	stillThere, err := checkHandler.Handle(query.CheckFavoriteQuery{UserID: 1, ProductID: 42})
	require.NoError(t, err)
	assert.True(t, stillThere)

	gone, err := checkHandler.Handle(query.CheckFavoriteQuery{UserID: 2, ProductID: 42})
	require.NoError(t, err)
	assert.False(t, gone)
}

func TestFavorites_RoundTrip(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	addHandler := command.NewAddFavoriteHandler(repo)
	removeHandler := command.NewRemoveFavoriteHandler(repo)
	checkHandler := query.NewCheckFavoriteHandler(repo)
	listHandler := query.NewListFavoritesHandler(repo)

	require.NoError(t, addHandler.Handle(command.AddFavoriteCommand{UserID: 7, ProductID: 10}))

	favorited, err := checkHandler.Handle(query.CheckFavoriteQuery{UserID: 7, ProductID: 10})
	require.NoError(t, err)
	assert.True(t, favorited)

	list, err := listHandler.Handle(query.ListFavoritesQuery{UserID: 7})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(10), list[0].ProductID)

	require.NoError(t, removeHandler.Handle(command.RemoveFavoriteCommand{UserID: 7, ProductID: 10}))

	favorited, err = checkHandler.Handle(query.CheckFavoriteQuery{UserID: 7, ProductID: 10})
	require.NoError(t, err)
	assert.False(t, favorited)

	list, err = listHandler.Handle(query.ListFavoritesQuery{UserID: 7})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddFavorite_ConcurrentAddsLeaveOneRow(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	handler := command.NewAddFavoriteHandler(repo)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = handler.Handle(command.AddFavoriteCommand{UserID: 1, ProductID: 42})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.count())
}

func TestFavorites_UnauthenticatedRejectedBeforeStore(t *testing.T) {
	repo := newMemoryFavoriteRepository()

	err := command.NewAddFavoriteHandler(repo).Handle(command.AddFavoriteCommand{UserID: 0, ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	err = command.NewRemoveFavoriteHandler(repo).Handle(command.RemoveFavoriteCommand{UserID: 0, ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = query.NewCheckFavoriteHandler(repo).Handle(query.CheckFavoriteQuery{UserID: 0, ProductID: 42})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = query.NewListFavoritesHandler(repo).Handle(query.ListFavoritesQuery{UserID: 0})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.Equal(t, 0, repo.callCount(), "unauthenticated requests must not reach the store")
}

func TestAddFavorite_MissingProductID(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	err := command.NewAddFavoriteHandler(repo).Handle(command.AddFavoriteCommand{UserID: 1})
	assert.ErrorIs(t, err, domain.ErrProductIDRequired)
	assert.Equal(t, 0, repo.callCount())
}

func TestRemoveFavorite_MissingProductID(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	err := command.NewRemoveFavoriteHandler(repo).Handle(command.RemoveFavoriteCommand{UserID: 1})
	assert.ErrorIs(t, err, domain.ErrProductIDRequired)
	assert.Equal(t, 0, repo.callCount())
}

func TestListFavorites_EmptyIsNotAnError(t *testing.T) {
	repo := newMemoryFavoriteRepository()
	list, err := query.NewListFavoritesHandler(repo).Handle(query.ListFavoritesQuery{UserID: 5})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
