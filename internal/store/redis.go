package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements EntityStore on a Redis server. A single SET replaces
// the whole value, which satisfies the atomic-replace contract. Values never
// expire; cleanup is a manual operation, same as the file store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Exists reports whether a document has been committed for the key.
func (s *RedisStore) Exists(ctx context.Context, ns Namespace, key string) (bool, error) {
	n, err := s.client.Exists(ctx, entityKey(ns, key)).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s/%s: %w", ns, key, err)
	}
	return n > 0, nil
}

// Get returns the committed document, or nil if none exists.
func (s *RedisStore) Get(ctx context.Context, ns Namespace, key string) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, entityKey(ns, key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", ns, key, err)
	}
	return data, nil
}

// Put replaces the document for the key.
func (s *RedisStore) Put(ctx context.Context, ns Namespace, key string, value json.RawMessage) (json.RawMessage, error) {
	if err := s.client.Set(ctx, entityKey(ns, key), []byte(value), 0).Err(); err != nil {
		return nil, fmt.Errorf("put %s/%s: %w", ns, key, err)
	}
	return value, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func entityKey(ns Namespace, key string) string {
	return fmt.Sprintf("sienna:%s:%s", ns, key)
}

var _ EntityStore = (*RedisStore)(nil)
