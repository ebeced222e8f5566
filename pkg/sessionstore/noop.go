package sessionstore

import "context"

// NoopBackend represents an execution context with no durable storage.
// Reads report ErrUnavailable and writes are accepted and discarded, so the
// auth flow degrades to "no session" without ever raising an error.
type NoopBackend struct{}

// NewNoopBackend creates a storage-less backend.
func NewNoopBackend() NoopBackend {
	return NoopBackend{}
}

func (NoopBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrUnavailable
}

func (NoopBackend) Set(ctx context.Context, key string, value []byte) error {
	return ErrUnavailable
}

func (NoopBackend) Delete(ctx context.Context, key string) error {
	return ErrUnavailable
}
