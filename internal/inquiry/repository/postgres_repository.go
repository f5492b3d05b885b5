package repository

import (
	"database/sql"
	"fmt"

	"github.com/samuraistore/backend/internal/inquiry/domain"
)

// PostgresInquiryRepository implements InquiryRepository interface
type PostgresInquiryRepository struct {
	db *sql.DB
}

// NewPostgresInquiryRepository creates a new PostgreSQL inquiry repository
func NewPostgresInquiryRepository(db *sql.DB) *PostgresInquiryRepository {
	return &PostgresInquiryRepository{db: db}
}

// Create inserts a new inquiry into the database
func (r *PostgresInquiryRepository) Create(inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Message,
	).Scan(&inquiry.ID, &inquiry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// FindAll retrieves inquiries newest first
func (r *PostgresInquiryRepository) FindAll(limit, offset int) ([]domain.Inquiry, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []domain.Inquiry{}
	for rows.Next() {
		inquiry := domain.Inquiry{}
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Email,
			&inquiry.Message,
			&inquiry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, nil
}

// Count returns the total number of inquiries
func (r *PostgresInquiryRepository) Count() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM inquiries`

	err := r.db.QueryRow(query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	return count, nil
}

// InitSchema creates the inquiries table if it doesn't exist
func (r *PostgresInquiryRepository) InitSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS inquiries (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
