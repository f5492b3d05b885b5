package usecase_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuraistore/backend/internal/inquiry/domain"
	"github.com/samuraistore/backend/internal/inquiry/usecase/command"
	"github.com/samuraistore/backend/internal/inquiry/usecase/query"
)

// memoryInquiryRepository is a thread-safe in-memory implementation of
// domain.InquiryRepository, newest first like the real query.
type memoryInquiryRepository struct {
	mu   sync.Mutex
	rows []domain.Inquiry
}

func (m *memoryInquiryRepository) Create(inquiry *domain.Inquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	inquiry.ID = len(m.rows) + 1
	inquiry.CreatedAt = time.Now()
	m.rows = append([]domain.Inquiry{*inquiry}, m.rows...)
	return nil
}

func (m *memoryInquiryRepository) FindAll(limit, offset int) ([]domain.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset >= len(m.rows) {
		return []domain.Inquiry{}, nil
	}
	end := offset + limit
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return append([]domain.Inquiry{}, m.rows[offset:end]...), nil
}

func (m *memoryInquiryRepository) Count() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func TestCreateInquiry_TrimsAndStores(t *testing.T) {
	repo := &memoryInquiryRepository{}
	handler := command.NewCreateInquiryHandler(repo)

	inquiry, err := handler.Handle(command.CreateInquiryCommand{
		Name:    "  Hanzo  ",
		Email:   " hanzo@example.com ",
		Message: " Do you ship to Kyoto? ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hanzo", inquiry.Name)
	assert.Equal(t, "hanzo@example.com", inquiry.Email)
	assert.Equal(t, "Do you ship to Kyoto?", inquiry.Message)
	assert.NotZero(t, inquiry.ID)
}

func TestCreateInquiry_Validation(t *testing.T) {
	handler := command.NewCreateInquiryHandler(&memoryInquiryRepository{})

	_, err := handler.Handle(command.CreateInquiryCommand{Email: "a@b.co", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = handler.Handle(command.CreateInquiryCommand{Name: "Hanzo", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrEmailInvalid)

	_, err = handler.Handle(command.CreateInquiryCommand{Name: "Hanzo", Email: "a@b.co", Message: "   "})
	assert.ErrorIs(t, err, domain.ErrMessageRequired)

	_, err = handler.Handle(command.CreateInquiryCommand{
		Name:    "Hanzo",
		Email:   "a@b.co",
		Message: strings.Repeat("x", 4001),
	})
	assert.ErrorIs(t, err, domain.ErrMessageTooLong)
}

func TestListInquiries_NewestFirstWithPagination(t *testing.T) {
	repo := &memoryInquiryRepository{}
	createHandler := command.NewCreateInquiryHandler(repo)
	listHandler := query.NewListInquiriesHandler(repo)

	for _, name := range []string{"first", "second", "third"} {
		_, err := createHandler.Handle(command.CreateInquiryCommand{
			Name:    name,
			Email:   "a@b.co",
			Message: "hello",
		})
		require.NoError(t, err)
	}

	result, err := listHandler.Handle(query.ListInquiriesQuery{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Inquiries, 2)
	assert.Equal(t, "third", result.Inquiries[0].Name)
	assert.Equal(t, "second", result.Inquiries[1].Name)

	result, err = listHandler.Handle(query.ListInquiriesQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, result.Inquiries, 1)
	assert.Equal(t, "first", result.Inquiries[0].Name)
}

func TestListInquiries_EmptyInbox(t *testing.T) {
	listHandler := query.NewListInquiriesHandler(&memoryInquiryRepository{})

	result, err := listHandler.Handle(query.ListInquiriesQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.NotNil(t, result.Inquiries)
	assert.Empty(t, result.Inquiries)
}
