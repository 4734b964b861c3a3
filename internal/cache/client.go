// Package cache is a read-through JSON cache over Redis. Keys are built from
// entity names plus the canonical encoded query, every written key is tracked
// in a per-entity index set, and Invalidate deletes exactly the live keys for
// an entity. The client is passed to services by constructor injection; a
// nil client disables caching entirely.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// ListKey keys a collection response by entity and canonical query string.
func ListKey(entity, encodedQuery string) string {
	return fmt.Sprintf("list:%s?%s", entity, encodedQuery)
}

// ItemKey keys a single record by entity and id.
func ItemKey(entity, id string) string {
	return fmt.Sprintf("item:%s:%s", entity, id)
}

func indexKey(entity string) string {
	return "idx:" + entity
}

// GetJSON loads a cached value into dest. A miss or any Redis/decode problem
// reports false; the caller falls through to the database.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		log.Printf("cache: decode %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores a value under key and registers the key in the entity's
// index set so invalidation can find it. Failures are logged and swallowed;
// the cache never fails a request.
func (c *Client) SetJSON(ctx context.Context, entity, key string, value interface{}) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache: encode %s: %v", key, err)
		return
	}

	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, data, c.ttl)
	pipe.SAdd(ctx, indexKey(entity), key)
	// keep the index alive a bit longer than its members
	pipe.Expire(ctx, indexKey(entity), c.ttl*2)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}

// Invalidate drops every cached key registered for the given entities.
func (c *Client) Invalidate(ctx context.Context, entities ...string) {
	if c == nil {
		return
	}
	for _, entity := range entities {
		idx := indexKey(entity)
		keys, err := c.rdb.SMembers(ctx, idx).Result()
		if err != nil {
			log.Printf("cache: invalidate %s: %v", entity, err)
			continue
		}
		keys = append(keys, idx)
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Printf("cache: invalidate %s: %v", entity, err)
		}
	}
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
