// Package store persists per-entity facts as JSON documents keyed by
// (namespace, key). Every read and write round-trips through stable storage;
// there is no in-process index and no cross-key transaction. The one
// guarantee every backend must uphold is atomic replace: a reader never
// observes a partial or truncated value, only the old document or the new one.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Namespace is a logical partition of the store. The string values double as
// the on-disk naming scheme, shared with earlier versions of this tool.
type Namespace string

const (
	// NamespaceSighting holds first-seen facts keyed by VIN.
	NamespaceSighting Namespace = "vin_seen"
	// NamespaceDealer holds dealer-detail documents keyed by dealer code.
	NamespaceDealer Namespace = "dealer"
	// NamespaceListingState holds user-applied listing states keyed by VIN.
	NamespaceListingState Namespace = "removed"
)

// EntityStore is a durable key/value store with at most one live value per
// (namespace, key). Put replaces any prior value atomically; there is no
// merge primitive, so callers wanting write-once semantics must check
// Exists/Get first.
type EntityStore interface {
	// Exists reports whether a value has been durably committed for the key.
	Exists(ctx context.Context, ns Namespace, key string) (bool, error)

	// Get returns the last committed value, or nil if none exists.
	Get(ctx context.Context, ns Namespace, key string) (json.RawMessage, error)

	// Put durably commits value, replacing any prior value, and returns it.
	Put(ctx context.Context, ns Namespace, key string, value json.RawMessage) (json.RawMessage, error)

	// Close releases the backing resources.
	Close() error
}

// Config selects and parameterizes a store backend.
type Config struct {
	Type          string // file, sqlite, or redis
	Dir           string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open creates the entity store selected by cfg.Type.
func Open(cfg Config) (EntityStore, error) {
	switch cfg.Type {
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath)
	case "redis":
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "", "file":
		return NewFileStore(cfg.Dir)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
