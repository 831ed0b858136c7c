package repository

import "context"

// KVStore is a durable byte store addressed by string keys. The checklist
// state lives under a single fixed key.
type KVStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
