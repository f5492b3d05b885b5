//go:build wireinject
// +build wireinject

package inquiry

import (
	"database/sql"

	"github.com/google/wire"

	"github.com/samuraistore/backend/internal/inquiry/delivery/http"
	"github.com/samuraistore/backend/internal/inquiry/domain"
	"github.com/samuraistore/backend/internal/inquiry/repository"
	"github.com/samuraistore/backend/internal/inquiry/usecase/command"
	"github.com/samuraistore/backend/internal/inquiry/usecase/query"
)

// ProvideInquiryRepository provides the inquiry repository
func ProvideInquiryRepository(db *sql.DB) domain.InquiryRepository {
	return repository.NewPostgresInquiryRepository(db)
}

// Command Handlers Providers
func ProvideCreateInquiryHandler(repo domain.InquiryRepository) *command.CreateInquiryHandler {
	return command.NewCreateInquiryHandler(repo)
}

// Query Handlers Providers
func ProvideListInquiriesHandler(repo domain.InquiryRepository) *query.ListInquiriesHandler {
	return query.NewListInquiriesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideInquiryRepository,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	ProvideCreateInquiryHandler,
	ProvideListInquiriesHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *sql.DB) (*http.InquiryHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewInquiryHandler,
	)
	return nil, nil
}
