package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storefrontStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	requireToken := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer token-1" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Login required"})
			return false
		}
		return true
	}

	mux.HandleFunc("/api/favorites", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"data": []map[string]interface{}{
					{"id": 1, "product_id": 10, "name": "Katana", "price": 250.0},
				},
			})
		case http.MethodPost:
			var body struct {
				ProductID uint `json:"product_id"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.ProductID == 0 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Product ID is required"})
				return
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "Added to favorites"})
		}
	})

	mux.HandleFunc("/api/favorites/10", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": true})
	})

	return httptest.NewServer(mux)
}

func TestClient_BearerAndEnvelopeDecoding(t *testing.T) {
	server := storefrontStub(t)
	defer server.Close()

	c := NewClient(server.URL)
	c.SetToken("token-1")

	items, err := c.ListFavorites(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(10), items[0].ProductID)
	assert.Equal(t, "Katana", items[0].Name)

	favorited, err := c.CheckFavorite(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, favorited)

	assert.NoError(t, c.AddFavorite(context.Background(), 10))
}

func TestClient_ErrorStatusMapping(t *testing.T) {
	server := storefrontStub(t)
	defer server.Close()

	c := NewClient(server.URL)

	// no token: 401 with the envelope error text
	_, err := c.ListFavorites(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Login required", apiErr.Message)

	// validation failure: 400
	c.SetToken("token-1")
	err = c.AddFavorite(context.Background(), 0)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Product ID is required", apiErr.Message)
}
