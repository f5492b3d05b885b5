package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuraistore/backend/internal/inquiry/domain"
	"github.com/samuraistore/backend/internal/inquiry/usecase/command"
	"github.com/samuraistore/backend/internal/inquiry/usecase/query"
	"github.com/samuraistore/backend/pkg/auth"
)

type stubInquiryRepository struct {
	mu       sync.Mutex
	rows     []domain.Inquiry
	failWith error
}

func (s *stubInquiryRepository) Create(inquiry *domain.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	inquiry.ID = len(s.rows) + 1
	inquiry.CreatedAt = time.Now()
	s.rows = append([]domain.Inquiry{*inquiry}, s.rows...)
	return nil
}

func (s *stubInquiryRepository) FindAll(limit, offset int) ([]domain.Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	if offset >= len(s.rows) {
		return []domain.Inquiry{}, nil
	}
	end := offset + limit
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return s.rows[offset:end], nil
}

func (s *stubInquiryRepository) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	return len(s.rows), nil
}

// The handler registers Prometheus collectors in its constructor, so it is
// built exactly once for the whole test package.
var (
	testRepo    = &stubInquiryRepository{}
	testRouter  = mux.NewRouter()
	testHandler = NewInquiryHandler(
		command.NewCreateInquiryHandler(testRepo),
		query.NewListInquiriesHandler(testRepo),
	)
)

func init() {
	testHandler.RegisterRoutes(testRouter)
}

func resetRepo() {
	testRepo.mu.Lock()
	defer testRepo.mu.Unlock()
	testRepo.rows = nil
	testRepo.failWith = nil
}

func bearerFor(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, "tester", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestCreateInquiryEndpoint_JSON(t *testing.T) {
	resetRepo()

	body, _ := json.Marshal(map[string]string{
		"name":    "Hanzo",
		"email":   "hanzo@example.com",
		"message": "When do the katanas restock?",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Thank you for your inquiry", resp.Message)
	assert.Len(t, testRepo.rows, 1)
}

func TestCreateInquiryEndpoint_FormEncoded(t *testing.T) {
	resetRepo()

	form := url.Values{}
	form.Set("name", "  Hanzo  ")
	form.Set("email", "hanzo@example.com")
	form.Set("message", "When do the katanas restock?")

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	require.Len(t, testRepo.rows, 1)
	assert.Equal(t, "Hanzo", testRepo.rows[0].Name)
	assert.Equal(t, "hanzo@example.com", testRepo.rows[0].Email)
}

func TestCreateInquiryEndpoint_MalformedJSON(t *testing.T) {
	resetRepo()

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, testRepo.rows)
}

func TestCreateInquiryEndpoint_ValidationError(t *testing.T) {
	resetRepo()

	form := url.Values{}
	form.Set("name", "Hanzo")
	form.Set("email", "not-an-email")
	form.Set("message", "hello")

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrEmailInvalid.Error(), resp.Error)
}

func TestListInquiriesEndpoint_AdminOnly(t *testing.T) {
	resetRepo()

	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/inquiries", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", bearerFor(t, 1, "user"))
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	req.Header.Set("Authorization", bearerFor(t, 2, "admin"))
	rec = httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
