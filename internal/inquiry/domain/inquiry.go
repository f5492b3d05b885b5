package domain

import "time"

// Inquiry is one submission of the contact form
type Inquiry struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryRepository defines the contract for inquiry storage
type InquiryRepository interface {
	Create(inquiry *Inquiry) error
	FindAll(limit, offset int) ([]Inquiry, error)
	Count() (int, error)
}
