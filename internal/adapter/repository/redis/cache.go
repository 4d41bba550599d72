package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DocumentCache implements usecase.DocumentCache using Redis.
type DocumentCache struct {
	client *redis.Client
	prefix string
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(client *redis.Client) *DocumentCache {
	return &DocumentCache{
		client: client,
		prefix: "export:",
	}
}

// Get retrieves a cached document by key. A missing key is not an error.
func (c *DocumentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a document with TTL.
func (c *DocumentCache) Set(ctx context.Context, key string, document []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, document, ttl).Err()
}

// CacheKey derives a stable cache key from the session token and the export
// selection. The token is hashed so it never appears in the keyspace.
func CacheKey(token, identityID string, accountIDs []string, timeframe string) string {
	h := sha256.New()
	h.Write([]byte(token))
	h.Write([]byte{0})
	h.Write([]byte(identityID))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(accountIDs, ",")))
	h.Write([]byte{0})
	h.Write([]byte(timeframe))
	return hex.EncodeToString(h.Sum(nil))
}
