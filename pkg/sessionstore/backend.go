package sessionstore

import (
	"context"
	"errors"
)

var (
	// ErrKeyNotFound indicates the key has no value in the backend.
	ErrKeyNotFound = errors.New("sessionstore: key not found")

	// ErrUnavailable indicates no durable storage is available. Store
	// operations treat it as "no session", never as a failure.
	ErrUnavailable = errors.New("sessionstore: storage unavailable")
)

// Backend is a namespace-agnostic key-value persistence layer.
type Backend interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value for key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
