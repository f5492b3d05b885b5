package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// FavoriteItem is one row of the favorites list as the API returns it
type FavoriteItem struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
}

// envelope matches the response shape every storefront handler writes
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// APIError carries the status code and error body of a failed call
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront API: %d %s", e.StatusCode, e.Message)
}

// Client is an HTTP SDK over the storefront API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the storefront at baseURL. Requests are
// traced through the otelhttp transport.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
	}
}

// SetToken sets the bearer token sent with every request
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		message := env.Error
		if message == "" {
			message = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// CheckFavorite reports whether the given product is in the caller's favorites
func (c *Client) CheckFavorite(ctx context.Context, productID uint) (bool, error) {
	var favorited bool
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/favorites/%d", productID), nil, &favorited)
	if err != nil {
		return false, err
	}
	return favorited, nil
}

// AddFavorite puts the given product in the caller's favorites
func (c *Client) AddFavorite(ctx context.Context, productID uint) error {
	body := map[string]uint{"product_id": productID}
	return c.do(ctx, http.MethodPost, "/api/favorites", body, nil)
}

// RemoveFavorite drops the given product from the caller's favorites
func (c *Client) RemoveFavorite(ctx context.Context, productID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/favorites/%d", productID), nil, nil)
}

// ListFavorites returns the caller's favorites newest first
func (c *Client) ListFavorites(ctx context.Context) ([]FavoriteItem, error) {
	items := []FavoriteItem{}
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart puts the given product in the caller's cart
func (c *Client) AddToCart(ctx context.Context, productID uint, quantity int) error {
	body := map[string]interface{}{"product_id": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/api/cart/items", body, nil)
}
