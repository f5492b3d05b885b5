package command

import (
	"regexp"
	"strings"

	"github.com/samuraistore/backend/internal/inquiry/domain"
)

const maxMessageLength = 4000

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateInquiryCommand represents one contact form submission
type CreateInquiryCommand struct {
	Name    string
	Email   string
	Message string
}

// CreateInquiryHandler handles the create inquiry command
type CreateInquiryHandler struct {
	repo domain.InquiryRepository
}

// NewCreateInquiryHandler creates a new create inquiry handler
func NewCreateInquiryHandler(repo domain.InquiryRepository) *CreateInquiryHandler {
	return &CreateInquiryHandler{repo: repo}
}

// Handle executes the create inquiry command
func (h *CreateInquiryHandler) Handle(cmd CreateInquiryCommand) (*domain.Inquiry, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)
	message := strings.TrimSpace(cmd.Message)

	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrEmailInvalid
	}
	if message == "" {
		return nil, domain.ErrMessageRequired
	}
	if len(message) > maxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	inquiry := &domain.Inquiry{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := h.repo.Create(inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}
