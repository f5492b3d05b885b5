package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDownstream = errors.New("downstream failure")

func failingCall() error { return errDownstream }
func healthyCall() error { return nil }

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 3, 50*time.Millisecond)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Call(failingCall), errDownstream)
	}

	assert.Equal(t, StateOpen, cb.GetState())

	// open circuit rejects without invoking the call
	err := cb.Call(func() error {
		t.Fatal("call must not run while the circuit is open")
		return nil
	})
	assert.Error(t, err)
}

func TestCircuitBreaker_HalfOpenThenCloses(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 1, 20*time.Millisecond)

	require.Error(t, cb.Call(failingCall))
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(30 * time.Millisecond)

	// first probe after the timeout moves the breaker to half-open
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Call(healthyCall))
	}

	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 1, 20*time.Millisecond)

	require.Error(t, cb.Call(failingCall))
	time.Sleep(30 * time.Millisecond)

	require.Error(t, cb.Call(failingCall))
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 2, time.Second)

	require.Error(t, cb.Call(failingCall))
	require.NoError(t, cb.Call(healthyCall))
	require.Error(t, cb.Call(failingCall))

	assert.Equal(t, StateClosed, cb.GetState(), "non-consecutive failures must not open the circuit")
}

func TestCircuitBreakerManager_ReusesBreakerPerService(t *testing.T) {
	m := NewCircuitBreakerManager()

	first := m.GetOrCreate("storefront")
	second := m.GetOrCreate("storefront")

	assert.Same(t, first, second)
	assert.Len(t, m.GetAllStats(), 1)
}

func TestDetermineServiceFromPath(t *testing.T) {
	assert.Equal(t, "storefront", determineServiceFromPath("/api/favorites/42"))
	assert.Equal(t, "storefront", determineServiceFromPath("/auth/login"))
	assert.Equal(t, "storefront", determineServiceFromPath("/admin/users"))
	assert.Equal(t, "storefront", determineServiceFromPath("/users/me"))
	assert.Equal(t, "", determineServiceFromPath("/gateway/health"))
	assert.Equal(t, "", determineServiceFromPath("/"))
}
