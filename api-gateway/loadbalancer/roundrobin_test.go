package loadbalancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobin_CyclesThroughInstances(t *testing.T) {
	rr := NewRoundRobin([]string{"http://store-1:8080", "http://store-2:8080", "http://store-3:8080"})

	got := []string{rr.Next(), rr.Next(), rr.Next(), rr.Next()}

	assert.Equal(t, []string{
		"http://store-1:8080",
		"http://store-2:8080",
		"http://store-3:8080",
		"http://store-1:8080",
	}, got)
}

func TestRoundRobin_EmptyFallsBackToDefault(t *testing.T) {
	rr := NewRoundRobin(nil)
	assert.Equal(t, "http://localhost:8080", rr.Next())
}

func TestRoundRobin_AddAndRemoveServer(t *testing.T) {
	rr := NewRoundRobin([]string{"http://store-1:8080"})
	rr.AddServer("http://store-2:8080")

	assert.Len(t, rr.GetServers(), 2)

	rr.RemoveServer("http://store-1:8080")
	servers := rr.GetServers()
	assert.Equal(t, []string{"http://store-2:8080"}, servers)
	assert.Equal(t, "http://store-2:8080", rr.Next())
}

func TestRoundRobin_ConcurrentNextDistributes(t *testing.T) {
	rr := NewRoundRobin([]string{"http://store-1:8080", "http://store-2:8080"})

	counts := make(chan string, 100)
	for i := 0; i < 100; i++ {
		go func() {
			counts <- rr.Next()
		}()
	}

	seen := map[string]int{}
	for i := 0; i < 100; i++ {
		seen[<-counts]++
	}

	assert.Equal(t, 50, seen["http://store-1:8080"])
	assert.Equal(t, 50, seen["http://store-2:8080"])
}
