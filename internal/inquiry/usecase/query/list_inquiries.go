package query

import (
	"github.com/samuraistore/backend/internal/inquiry/domain"
)

const defaultListLimit = 50

// ListInquiriesQuery represents the query to list inquiries with pagination
type ListInquiriesQuery struct {
	Limit  int
	Offset int
}

// ListInquiriesResult carries one page plus the overall count
type ListInquiriesResult struct {
	Inquiries []domain.Inquiry `json:"inquiries"`
	Total     int              `json:"total"`
}

// ListInquiriesHandler handles the list inquiries query
type ListInquiriesHandler struct {
	repo domain.InquiryRepository
}

// NewListInquiriesHandler creates a new list inquiries handler
func NewListInquiriesHandler(repo domain.InquiryRepository) *ListInquiriesHandler {
	return &ListInquiriesHandler{repo: repo}
}

// Handle executes the list inquiries query
func (h *ListInquiriesHandler) Handle(q ListInquiriesQuery) (*ListInquiriesResult, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	inquiries, err := h.repo.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	total, err := h.repo.Count()
	if err != nil {
		return nil, err
	}

	return &ListInquiriesResult{Inquiries: inquiries, Total: total}, nil
}
