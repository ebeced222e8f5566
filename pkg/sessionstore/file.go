package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend implements Backend over a single JSON file holding all keys.
// Writes go through a temp file and rename so a crash mid-write leaves the
// previous state intact. A corrupt or unreadable file reads as empty.
type FileBackend struct {
	mu   sync.Mutex
	path string
}

// NewFileBackend creates a backend persisting to the given path. Parent
// directories are created on first write, not here.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.read()
	value, ok := values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return []byte(value), nil
}

func (f *FileBackend) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.read()
	values[key] = string(value)
	return f.write(values)
}

func (f *FileBackend) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := f.read()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.write(values)
}

// read loads the key map, treating a missing or malformed file as empty.
func (f *FileBackend) read() map[string]string {
	values := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if err != nil {
		return values
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return make(map[string]string)
	}

	return values
}

func (f *FileBackend) write(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return ErrUnavailable
		}
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return os.Chmod(f.path, 0o600)
}
