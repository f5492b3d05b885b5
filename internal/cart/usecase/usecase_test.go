package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/samuraistore/backend/internal/cart/domain"
	"github.com/samuraistore/backend/internal/cart/usecase/command"
	"github.com/samuraistore/backend/internal/cart/usecase/query"
	productdomain "github.com/samuraistore/backend/internal/product/domain"
	"github.com/samuraistore/backend/kafka"
)

// memoryCartRepository is a thread-safe in-memory implementation of
// domain.CartRepository with the same hash-per-user shape as Redis.
type memoryCartRepository struct {
	mu    sync.Mutex
	carts map[uint]map[uint]domain.CartItem
}

func newMemoryCartRepository() *memoryCartRepository {
	return &memoryCartRepository{carts: make(map[uint]map[uint]domain.CartItem)}
}

func (m *memoryCartRepository) Get(ctx context.Context, userID uint) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	for _, item := range m.carts[userID] {
		cart.Items = append(cart.Items, item)
	}
	return cart, nil
}

func (m *memoryCartRepository) SetItem(ctx context.Context, userID uint, item domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.carts[userID] == nil {
		m.carts[userID] = make(map[uint]domain.CartItem)
	}
	m.carts[userID][item.ProductID] = item
	return nil
}

func (m *memoryCartRepository) RemoveItem(ctx context.Context, userID, productID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts[userID], productID)
	return nil
}

func (m *memoryCartRepository) Clear(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}

// memoryCatalog backs the add-item handler with a fixed product set
type memoryCatalog struct {
	products map[uint]*productdomain.Product
}

func (c *memoryCatalog) FindByID(id uint) (*productdomain.Product, error) {
	product, ok := c.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func newMemoryCatalog(products ...*productdomain.Product) *memoryCatalog {
	c := &memoryCatalog{products: make(map[uint]*productdomain.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

// recordingPublisher captures published order events
type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.OrderPlacedEvent
	fail   bool
}

func (p *recordingPublisher) PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() []kafka.OrderPlacedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]kafka.OrderPlacedEvent(nil), p.events...)
}

func katana() *productdomain.Product {
	return &productdomain.Product{ID: 1, Name: "Katana", Price: 250, Stock: 5, IsActive: true}
}

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	carts := newMemoryCartRepository()
	handler := command.NewAddItemHandler(carts, newMemoryCatalog(katana()))

	cart, err := handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart, err = handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 750.0, cart.Total())
}

func TestAddItem_StockLimit(t *testing.T) {
	carts := newMemoryCartRepository()
	handler := command.NewAddItemHandler(carts, newMemoryCatalog(katana()))

	_, err := handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 4})
	require.NoError(t, err)

	// 4 already in the cart, 5 in stock: two more must not fit
	_, err = handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	cart, err := carts.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity, "a rejected add must not change the cart")
}

func TestAddItem_UnavailableProduct(t *testing.T) {
	inactive := katana()
	inactive.IsActive = false
	handler := command.NewAddItemHandler(newMemoryCartRepository(), newMemoryCatalog(inactive))

	_, err := handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductUnavailable)

	_, err = handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductUnavailable)
}

func TestAddItem_InvalidInput(t *testing.T) {
	handler := command.NewAddItemHandler(newMemoryCartRepository(), newMemoryCatalog(katana()))

	_, err := handler.Handle(context.Background(), command.AddItemCommand{UserID: 0, ProductID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 0, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductIDRequired)

	_, err = handler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrQuantityInvalid)
}

func TestRemoveItem_AbsentLineSucceeds(t *testing.T) {
	handler := command.NewRemoveItemHandler(newMemoryCartRepository())

	cart, err := handler.Handle(context.Background(), command.RemoveItemCommand{UserID: 1, ProductID: 42})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItem_LeavesOtherLines(t *testing.T) {
	carts := newMemoryCartRepository()
	wakizashi := &productdomain.Product{ID: 2, Name: "Wakizashi", Price: 180, Stock: 3, IsActive: true}
	addHandler := command.NewAddItemHandler(carts, newMemoryCatalog(katana(), wakizashi))

	_, err := addHandler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = addHandler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	cart, err := command.NewRemoveItemHandler(carts).Handle(context.Background(), command.RemoveItemCommand{UserID: 1, ProductID: 1})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].ProductID)
}

func TestCheckout_PublishesPerLineAndClears(t *testing.T) {
	carts := newMemoryCartRepository()
	wakizashi := &productdomain.Product{ID: 2, Name: "Wakizashi", Price: 180, Stock: 3, IsActive: true}
	addHandler := command.NewAddItemHandler(carts, newMemoryCatalog(katana(), wakizashi))

	_, err := addHandler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	_, err = addHandler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 2, Quantity: 1})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	order, err := command.NewCheckoutHandler(carts, publisher).Handle(context.Background(), command.CheckoutCommand{UserID: 1})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderID, "ORD-"))
	assert.Equal(t, 680.0, order.Total)
	require.Len(t, order.Items, 2)

	events := publisher.published()
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, order.OrderID, event.OrderID)
		assert.Equal(t, uint(1), event.UserID)
	}

	cart, err := carts.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty(), "checkout must clear the cart")
}

func TestCheckout_EmptyCart(t *testing.T) {
	handler := command.NewCheckoutHandler(newMemoryCartRepository(), &recordingPublisher{})

	_, err := handler.Handle(context.Background(), command.CheckoutCommand{UserID: 1})
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestCheckout_PublishFailureDoesNotBlockOrder(t *testing.T) {
	carts := newMemoryCartRepository()
	addHandler := command.NewAddItemHandler(carts, newMemoryCatalog(katana()))

	_, err := addHandler.Handle(context.Background(), command.AddItemCommand{UserID: 1, ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	publisher := &recordingPublisher{fail: true}
	order, err := command.NewCheckoutHandler(carts, publisher).Handle(context.Background(), command.CheckoutCommand{UserID: 1})
	require.NoError(t, err, "a broker outage must not fail the order")
	assert.Equal(t, 250.0, order.Total)

	cart, err := carts.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestGetCart_NewUserGetsEmptyCart(t *testing.T) {
	handler := query.NewGetCartHandler(newMemoryCartRepository())

	cart, err := handler.Handle(context.Background(), query.GetCartQuery{UserID: 9})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total())
}

func TestGetCart_Unauthenticated(t *testing.T) {
	handler := query.NewGetCartHandler(newMemoryCartRepository())

	_, err := handler.Handle(context.Background(), query.GetCartQuery{UserID: 0})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
