package storage

import (
	"context"
	"errors"
)

// Backend is a key/value blob store. Each state container persists its full
// state as a single JSON document under one key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Get for a key that has never been written.
var ErrNotFound = errors.New("storage: key not found")
