package client

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFavoriteService counts calls and can fail or block on demand
type stubFavoriteService struct {
	mu      sync.Mutex
	adds    int
	removes int
	err     error
	block   chan struct{}
}

func (s *stubFavoriteService) AddFavorite(ctx context.Context, productID uint) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adds++
	return s.err
}

func (s *stubFavoriteService) RemoveFavorite(ctx context.Context, productID uint) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removes++
	return s.err
}

func (s *stubFavoriteService) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adds, s.removes
}

func TestToggle_SettledFlip(t *testing.T) {
	svc := &stubFavoriteService{}
	toggle := NewFavoriteToggle(svc, 42, false)

	assert.Equal(t, "Add to favorites", toggle.ActionTitle())

	require.NoError(t, toggle.Click(context.Background()))
	assert.True(t, toggle.Favorited())
	assert.Equal(t, "Remove from favorites", toggle.ActionTitle())

	require.NoError(t, toggle.Click(context.Background()))
	assert.False(t, toggle.Favorited())

	adds, removes := svc.counts()
	assert.Equal(t, 1, adds)
	assert.Equal(t, 1, removes)
}

func TestToggle_FailureLeavesStateUntouched(t *testing.T) {
	svc := &stubFavoriteService{err: errors.New("network down")}
	toggle := NewFavoriteToggle(svc, 42, false)

	require.NoError(t, toggle.Click(context.Background()))

	assert.False(t, toggle.Favorited(), "a failed add must not flip the control")
	assert.Equal(t, "Add to favorites", toggle.ActionTitle())
	assert.False(t, toggle.Pending())

	adds, _ := svc.counts()
	assert.Equal(t, 1, adds)
}

func TestToggle_ClickWhilePendingRejected(t *testing.T) {
	svc := &stubFavoriteService{block: make(chan struct{})}
	toggle := NewFavoriteToggle(svc, 42, false)

	done := make(chan error, 1)
	go func() {
		done <- toggle.Click(context.Background())
	}()

	// wait until the first click is in flight
	for !toggle.Pending() {
		runtime.Gosched()
	}

	err := toggle.Click(context.Background())
	assert.ErrorIs(t, err, ErrTogglePending)

	close(svc.block)
	require.NoError(t, <-done)

	adds, removes := svc.counts()
	assert.Equal(t, 1, adds, "the rejected click must not issue a request")
	assert.Equal(t, 0, removes)
	assert.True(t, toggle.Favorited())
}

func TestToggle_PreActionValueDecidesTheCall(t *testing.T) {
	svc := &stubFavoriteService{}
	toggle := NewFavoriteToggle(svc, 42, true)

	require.NoError(t, toggle.Click(context.Background()))

	adds, removes := svc.counts()
	assert.Equal(t, 0, adds)
	assert.Equal(t, 1, removes)
	assert.False(t, toggle.Favorited())
}
