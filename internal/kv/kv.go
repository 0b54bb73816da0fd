// Package kv abstracts the persistent key-value store the songbook state
// lives in. Values are opaque strings; callers own serialization.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value yet.
var ErrNotFound = errors.New("key not found")

// Store is the persistence collaborator. Both operations may fail with an
// underlying I/O error, which callers surface as a storage failure.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
