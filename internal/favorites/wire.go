//go:build wireinject
// +build wireinject

package favorites

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/samuraistore/backend/internal/favorites/delivery/http"
	"github.com/samuraistore/backend/internal/favorites/domain"
	"github.com/samuraistore/backend/internal/favorites/repository"
	"github.com/samuraistore/backend/internal/favorites/usecase/command"
	"github.com/samuraistore/backend/internal/favorites/usecase/query"
)

// ProvideFavoriteRepository provides the favorite repository
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewGormFavoriteRepository(db)
}

// Command Handlers Providers
func ProvideAddFavoriteHandler(repo domain.FavoriteRepository) *command.AddFavoriteHandler {
	return command.NewAddFavoriteHandler(repo)
}

func ProvideRemoveFavoriteHandler(repo domain.FavoriteRepository) *command.RemoveFavoriteHandler {
	return command.NewRemoveFavoriteHandler(repo)
}

// Query Handlers Providers
func ProvideCheckFavoriteHandler(repo domain.FavoriteRepository) *query.CheckFavoriteHandler {
	return query.NewCheckFavoriteHandler(repo)
}

func ProvideListFavoritesHandler(repo domain.FavoriteRepository) *query.ListFavoritesHandler {
	return query.NewListFavoritesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFavoriteRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddFavoriteHandler,
	ProvideRemoveFavoriteHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideCheckFavoriteHandler,
	ProvideListFavoritesHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.FavoriteHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewFavoriteHandlerWithDI,
	)
	return nil, nil
}
