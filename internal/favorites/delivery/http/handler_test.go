package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuraistore/backend/internal/favorites/domain"
	"github.com/samuraistore/backend/pkg/auth"
)

type stubFavoriteRepository struct {
	mu       sync.Mutex
	rows     map[[2]uint]time.Time
	failWith error
}

func (s *stubFavoriteRepository) Exists(userID, productID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return false, s.failWith
	}
	_, ok := s.rows[[2]uint{userID, productID}]
	return ok, nil
}

func (s *stubFavoriteRepository) InsertIfAbsent(userID, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	key := [2]uint{userID, productID}
	if _, ok := s.rows[key]; !ok {
		s.rows[key] = time.Now()
	}
	return nil
}

func (s *stubFavoriteRepository) Delete(userID, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	delete(s.rows, [2]uint{userID, productID})
	return nil
}

func (s *stubFavoriteRepository) ListByUser(userID uint) ([]domain.FavoriteProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []domain.FavoriteProjection
	for key, created := range s.rows {
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

// The handler registers Prometheus collectors in its constructor, so it is
// built exactly once for the whole test package.
var (
	testRepo    = &stubFavoriteRepository{rows: make(map[[2]uint]time.Time)}
	testRouter  = mux.NewRouter()
	testHandler = NewFavoriteHandler(testRepo)
)

func init() {
	testHandler.RegisterRoutes(testRouter)
}

func resetRepo() {
	testRepo.mu.Lock()
	defer testRepo.mu.Unlock()
	testRepo.rows = make(map[[2]uint]time.Time)
	testRepo.failWith = nil
}

func bearerFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, "tester", "user")
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	return rec
}

func TestAddFavoriteEndpoint(t *testing.T) {
	resetRepo()
	token := bearerFor(t, 1)

	rec := doRequest(t, http.MethodPost, "/api/favorites", token, map[string]uint{"product_id": 42})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Added to favorites", resp.Message)

	// second add of the same pair is a no-op but still succeeds
	rec = doRequest(t, http.MethodPost, "/api/favorites", token, map[string]uint{"product_id": 42})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddFavoriteEndpoint_MissingProductID(t *testing.T) {
	resetRepo()
	rec := doRequest(t, http.MethodPost, "/api/favorites", bearerFor(t, 1), map[string]uint{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Product ID is required", resp.Error)
}

func TestFavoriteEndpoints_RequireAuth(t *testing.T) {
	resetRepo()
	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodGet, "/api/favorites/42"},
		{http.MethodDelete, "/api/favorites/42"},
	} {
		rec := doRequest(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCheckFavoriteEndpoint(t *testing.T) {
	resetRepo()
	token := bearerFor(t, 1)

	rec := doRequest(t, http.MethodGet, "/api/favorites/42", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp.Data)

	doRequest(t, http.MethodPost, "/api/favorites", token, map[string]uint{"product_id": 42})

	rec = doRequest(t, http.MethodGet, "/api/favorites/42", token, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Data)
}

func TestCheckFavoriteEndpoint_InvalidProductID(t *testing.T) {
	resetRepo()
	rec := doRequest(t, http.MethodGet, "/api/favorites/not-a-number", bearerFor(t, 1), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFavoriteEndpoint_ScopedToOwner(t *testing.T) {
	resetRepo()
	alice := bearerFor(t, 1)
	bob := bearerFor(t, 2)

	doRequest(t, http.MethodPost, "/api/favorites", alice, map[string]uint{"product_id": 42})
	doRequest(t, http.MethodPost, "/api/favorites", bob, map[string]uint{"product_id": 42})

	rec := doRequest(t, http.MethodDelete, "/api/favorites/42", bob, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// alice's row survives bob's delete
	rec = doRequest(t, http.MethodGet, "/api/favorites/42", alice, nil)
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp.Data)
}

func TestFavoriteEndpoints_StorageFailureIs500(t *testing.T) {
	resetRepo()
	testRepo.failWith = errors.New("pq: connection refused")
	token := bearerFor(t, 1)

	for _, tc := range []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/api/favorites", map[string]uint{"product_id": 42}},
		{http.MethodGet, "/api/favorites/42", nil},
		{http.MethodGet, "/api/favorites", nil},
		{http.MethodDelete, "/api/favorites/42", nil},
	} {
		rec := doRequest(t, tc.method, tc.path, token, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, "%s %s", tc.method, tc.path)

		var resp Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)

		// the storage cause stays in the logs, never in the body
		assert.Equal(t, "Internal server error", resp.Error)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	}
}

func TestListFavoritesEndpoint_EmptyIsArray(t *testing.T) {
	resetRepo()
	rec := doRequest(t, http.MethodGet, "/api/favorites", bearerFor(t, 9), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.True(t, raw.Success)
	assert.NotNil(t, raw.Data)
	assert.Empty(t, raw.Data)
}
