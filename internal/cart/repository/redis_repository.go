package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samuraistore/backend/internal/cart/domain"
)

// cartTTL keeps abandoned carts around for a month before Redis drops them.
const cartTTL = 30 * 24 * time.Hour

// RedisCartRepository stores each cart as a Redis hash keyed by user, one
// field per product line.
type RedisCartRepository struct {
	client *redis.Client
}

// NewRedisCartRepository creates a new Redis cart repository
func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Get loads the full cart for a user. A missing key is an empty cart.
func (r *RedisCartRepository) Get(ctx context.Context, userID uint) (*domain.Cart, error) {
	fields, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	for _, raw := range fields {
		var item domain.CartItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to decode cart line: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, nil
}

// SetItem upserts one product line
func (r *RedisCartRepository) SetItem(ctx context.Context, userID uint, item domain.CartItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode cart line: %w", err)
	}

	key := cartKey(userID)
	if err := r.client.HSet(ctx, key, strconv.FormatUint(uint64(item.ProductID), 10), raw).Err(); err != nil {
		return fmt.Errorf("failed to store cart line: %w", err)
	}
	if err := r.client.Expire(ctx, key, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to refresh cart ttl: %w", err)
	}
	return nil
}

// RemoveItem deletes one product line. Removing an absent line is a no-op.
func (r *RedisCartRepository) RemoveItem(ctx context.Context, userID, productID uint) error {
	if err := r.client.HDel(ctx, cartKey(userID), strconv.FormatUint(uint64(productID), 10)).Err(); err != nil {
		return fmt.Errorf("failed to remove cart line: %w", err)
	}
	return nil
}

// Clear drops the whole cart
func (r *RedisCartRepository) Clear(ctx context.Context, userID uint) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
