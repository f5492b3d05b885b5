package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/samuraistore/backend/pkg/logger"
)

// CacheConfig maps storefront paths to TTLs. Only paths listed here are
// cached; everything else (favorites, cart, inquiries, auth) depends on
// the caller and must pass through.
type CacheConfig struct {
	DefaultTTL time.Duration
	PathTTLs   map[string]time.Duration
}

// DefaultCacheConfig returns the catalog caching policy. The home sections
// only move when sales or the catalog change, so they tolerate a longer TTL
// than product listings.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL: time.Minute,
		PathTTLs: map[string]time.Duration{
			"/api/products/home": 5 * time.Minute,
			"/api/products":      time.Minute,
			"/api/home":          5 * time.Minute,
		},
	}
}

// ttlFor returns the TTL for a path, longest matching prefix wins.
// Zero means the path is not cacheable.
func (cfg CacheConfig) ttlFor(path string) time.Duration {
	var ttl time.Duration
	matched := -1
	for prefix, d := range cfg.PathTTLs {
		if strings.HasPrefix(path, prefix) && len(prefix) > matched {
			matched = len(prefix)
			ttl = d
		}
	}
	return ttl
}

// CacheMiddleware caches catalog responses in Redis
func CacheMiddleware(redisClient *redis.Client, config CacheConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil {
			return c.Next()
		}

		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return c.Next()
		}

		ttl := config.ttlFor(c.Path())
		if ttl == 0 {
			return c.Next()
		}

		cacheKey := generateCacheKey(c)

		ctx := context.Background()
		cachedResponse, err := redisClient.Get(ctx, cacheKey).Bytes()
		if err == nil && len(cachedResponse) > 0 {
			logger.Logger.Debug().
				Str("path", c.Path()).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cachedResponse)
		}

		logger.Logger.Debug().
			Str("path", c.Path()).
			Str("cache_key", cacheKey).
			Msg("Cache miss")

		err = c.Next()

		// Only successful catalog payloads are worth keeping
		if c.Response().StatusCode() == fiber.StatusOK {
			responseBody := c.Response().Body()

			if err := redisClient.Set(ctx, cacheKey, responseBody, ttl).Err(); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			} else {
				logger.Logger.Debug().
					Str("path", c.Path()).
					Str("cache_key", cacheKey).
					Dur("ttl", ttl).
					Int("size", len(responseBody)).
					Msg("Response cached")
			}

			c.Set("X-Cache", "MISS")
		}

		return err
	}
}

// generateCacheKey hashes method, path and query. Cached paths are public
// catalog reads, so the Authorization header is deliberately excluded.
func generateCacheKey(c *fiber.Ctx) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// InvalidateCache drops cached entries matching a pattern, used when the
// admin mutates the catalog.
func InvalidateCache(redisClient *redis.Client, pattern string) error {
	ctx := context.Background()

	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}

		logger.Logger.Info().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}
