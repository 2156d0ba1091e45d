package shared

import "context"

// --- Persistence Interfaces ---

// KVStore is the durable key-value store backing the engine's persisted
// state records. Each record is written as a single value under its key,
// so a Set either fully replaces the record or leaves it untouched.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
