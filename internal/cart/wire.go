//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/samuraistore/backend/internal/cart/delivery/http"
	"github.com/samuraistore/backend/internal/cart/domain"
	"github.com/samuraistore/backend/internal/cart/repository"
	"github.com/samuraistore/backend/internal/cart/usecase/command"
	"github.com/samuraistore/backend/internal/cart/usecase/query"
	productdomain "github.com/samuraistore/backend/internal/product/domain"
)

// ProvideCartRepository provides the Redis-backed cart repository
func ProvideCartRepository(client *redis.Client) domain.CartRepository {
	return repository.NewRedisCartRepository(client)
}

// Command Handlers Providers
func ProvideAddItemHandler(carts domain.CartRepository, catalog productdomain.ProductRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(carts, catalog)
}

func ProvideRemoveItemHandler(carts domain.CartRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(carts)
}

func ProvideCheckoutHandler(carts domain.CartRepository, publisher command.OrderEventPublisher) *command.CheckoutHandler {
	return command.NewCheckoutHandler(carts, publisher)
}

// Query Handlers Providers
func ProvideGetCartHandler(carts domain.CartRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(carts)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideRemoveItemHandler,
	ProvideCheckoutHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(client *redis.Client, catalog productdomain.ProductRepository, publisher command.OrderEventPublisher) (*http.CartHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewCartHandler,
	)
	return nil, nil
}
