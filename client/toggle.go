package client

import (
	"context"
	"errors"
	"sync"

	"github.com/samuraistore/backend/pkg/logger"
)

// ErrTogglePending is returned when the control is clicked while a
// previous click is still in flight.
var ErrTogglePending = errors.New("toggle already in flight")

// FavoriteService is the slice of the SDK the toggle control needs
type FavoriteService interface {
	AddFavorite(ctx context.Context, productID uint) error
	RemoveFavorite(ctx context.Context, productID uint) error
}

// FavoriteToggle is the view model behind a single product's favorite
// button. It starts from a server-supplied value and never fetches on its
// own. The held value flips only after a round trip succeeds, so the
// rendered affordance always reflects settled server state.
type FavoriteToggle struct {
	mu        sync.Mutex
	svc       FavoriteService
	productID uint
	favorited bool
	pending   bool
}

// NewFavoriteToggle creates a toggle for one product. favorited is the
// server-rendered initial state.
func NewFavoriteToggle(svc FavoriteService, productID uint, favorited bool) *FavoriteToggle {
	return &FavoriteToggle{svc: svc, productID: productID, favorited: favorited}
}

// Favorited returns the settled state
func (t *FavoriteToggle) Favorited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.favorited
}

// Pending reports whether a click is in flight. The control is rendered
// disabled while true.
func (t *FavoriteToggle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// ActionTitle returns the affordance text for the settled state
func (t *FavoriteToggle) ActionTitle() string {
	if t.Favorited() {
		return "Remove from favorites"
	}
	return "Add to favorites"
}

// Click issues exactly one add or remove based on the value held before
// the click. A click while a previous one is in flight is rejected. A
// failed round trip leaves the value untouched; the error is logged, not
// surfaced to the rendered control.
func (t *FavoriteToggle) Click(ctx context.Context) error {
	t.mu.Lock()
	if t.pending {
		t.mu.Unlock()
		return ErrTogglePending
	}
	t.pending = true
	wasFavorited := t.favorited
	t.mu.Unlock()

	var err error
	if wasFavorited {
		err = t.svc.RemoveFavorite(ctx, t.productID)
	} else {
		err = t.svc.AddFavorite(ctx, t.productID)
	}

	t.mu.Lock()
	t.pending = false
	if err == nil {
		t.favorited = !wasFavorited
	}
	t.mu.Unlock()

	if err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("product_id", t.productID).
			Bool("favorited", wasFavorited).
			Msg("Favorite toggle failed")
	}
	return nil
}
