package client

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubListService serves favorites from a mutable slice
type stubListService struct {
	mu         sync.Mutex
	favorites  []FavoriteItem
	lists      int
	removes    int
	cartAdds   int
	removeErr  error
	cartAddErr error
}

func (s *stubListService) ListFavorites(ctx context.Context) ([]FavoriteItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	return append([]FavoriteItem(nil), s.favorites...), nil
}

func (s *stubListService) RemoveFavorite(ctx context.Context, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removes++
	if s.removeErr != nil {
		return s.removeErr
	}
	kept := s.favorites[:0]
	for _, item := range s.favorites {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.favorites = kept
	return nil
}

func (s *stubListService) AddToCart(ctx context.Context, productID uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartAdds++
	return s.cartAddErr
}

func twoFavorites() []FavoriteItem {
	return []FavoriteItem{
		{ID: 1, ProductID: 10, Name: "Katana"},
		{ID: 2, ProductID: 20, Name: "Wakizashi"},
	}
}

func TestList_LoadAndRender(t *testing.T) {
	svc := &stubListService{favorites: twoFavorites()}
	list := NewFavoritesList(svc, nil)

	require.NoError(t, list.Load(context.Background()))
	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Katana", items[0].Name)
}

func TestList_DeclinedConfirmMakesNoCall(t *testing.T) {
	svc := &stubListService{favorites: twoFavorites()}
	var asked string
	list := NewFavoritesList(svc, func(name string) bool {
		asked = name
		return false
	})
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.Remove(context.Background(), 10))

	assert.Equal(t, "Katana", asked)
	assert.Equal(t, 0, svc.removes, "declining the confirm must not issue a request")
	assert.Len(t, list.Items(), 2)
}

func TestList_ConfirmedRemoveRefetches(t *testing.T) {
	svc := &stubListService{favorites: twoFavorites()}
	list := NewFavoritesList(svc, func(string) bool { return true })
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.Remove(context.Background(), 10))

	assert.Equal(t, 1, svc.removes)
	assert.Equal(t, 2, svc.lists, "a successful removal must re-fetch the list")
	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(20), items[0].ProductID)
}

func TestList_FailedRemoveKeepsRow(t *testing.T) {
	svc := &stubListService{favorites: twoFavorites(), removeErr: errors.New("network down")}
	list := NewFavoritesList(svc, func(string) bool { return true })
	require.NoError(t, list.Load(context.Background()))

	err := list.Remove(context.Background(), 10)
	assert.Error(t, err)
	assert.Len(t, list.Items(), 2, "a failed removal must keep the row")
	assert.Equal(t, 1, svc.lists, "a failed removal must not re-fetch")
}

func TestList_AddToCartDisablesPermanently(t *testing.T) {
	svc := &stubListService{favorites: twoFavorites()}
	list := NewFavoritesList(svc, nil)
	require.NoError(t, list.Load(context.Background()))

	assert.False(t, list.InCart(10))
	require.NoError(t, list.AddToCart(context.Background(), 10))
	assert.True(t, list.InCart(10))

	// the flag survives a reload of the same render
	require.NoError(t, list.Load(context.Background()))
	assert.True(t, list.InCart(10))
	assert.False(t, list.InCart(20))
}

func TestList_FailedAddToCartKeepsButtonEnabled(t *testing.T) {
	svc := &stubListService{favorites: twoFavorites(), cartAddErr: errors.New("out of stock")}
	list := NewFavoritesList(svc, nil)
	require.NoError(t, list.Load(context.Background()))

	err := list.AddToCart(context.Background(), 10)
	assert.Error(t, err)
	assert.False(t, list.InCart(10))
}
