// Package storage is the key-value byte store the job board persists into.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("key not found in storage")
	ErrClosed   = errors.New("storage is closed")
)

// KV stores opaque values under string keys. Set replaces the whole value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte) error

	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error

	Close() error
}
