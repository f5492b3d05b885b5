package client

import (
	"context"
	"sync"

	"github.com/samuraistore/backend/pkg/logger"
)

// ListService is the slice of the SDK the favorites list view needs
type ListService interface {
	ListFavorites(ctx context.Context) ([]FavoriteItem, error)
	RemoveFavorite(ctx context.Context, productID uint) error
	AddToCart(ctx context.Context, productID uint, quantity int) error
}

// ConfirmFunc asks the user to confirm removing the named product. It is
// called synchronously before any request is issued.
type ConfirmFunc func(name string) bool

// FavoritesList is the view model behind the account favorites page. The
// server is the source of truth: every successful removal is followed by a
// full re-fetch, so a removed row cannot resurrect from stale local state.
type FavoritesList struct {
	mu      sync.Mutex
	svc     ListService
	confirm ConfirmFunc
	items   []FavoriteItem
	inCart  map[uint]bool
}

// NewFavoritesList creates a list view. confirm guards every removal; a
// nil confirm removes without asking.
func NewFavoritesList(svc ListService, confirm ConfirmFunc) *FavoritesList {
	return &FavoritesList{
		svc:     svc,
		confirm: confirm,
		items:   []FavoriteItem{},
		inCart:  make(map[uint]bool),
	}
}

// Load fetches the favorites from the server
func (l *FavoritesList) Load(ctx context.Context) error {
	items, err := l.svc.ListFavorites(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

// Items returns the rows in server order
func (l *FavoritesList) Items() []FavoriteItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FavoriteItem(nil), l.items...)
}

// InCart reports whether the row's add-to-cart button has been used. Once
// true it never reverts for this render.
func (l *FavoritesList) InCart(productID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inCart[productID]
}

// AddToCart puts one unit of the row's product in the cart. Success
// disables the button for the rest of this render.
func (l *FavoritesList) AddToCart(ctx context.Context, productID uint) error {
	if err := l.svc.AddToCart(ctx, productID, 1); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("product_id", productID).
			Msg("Add to cart from favorites failed")
		return err
	}

	l.mu.Lock()
	l.inCart[productID] = true
	l.mu.Unlock()
	return nil
}

// Remove deletes the row's product from the favorites after the user
// confirms. A declined confirm issues no request. A failed removal keeps
// the row and only logs; a successful one re-fetches the whole list.
func (l *FavoritesList) Remove(ctx context.Context, productID uint) error {
	if l.confirm != nil {
		l.mu.Lock()
		name := ""
		for _, item := range l.items {
			if item.ProductID == productID {
				name = item.Name
				break
			}
		}
		l.mu.Unlock()

		if !l.confirm(name) {
			return nil
		}
	}

	if err := l.svc.RemoveFavorite(ctx, productID); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("product_id", productID).
			Msg("Favorite removal failed")
		return err
	}

	return l.Load(ctx)
}
