package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load loads environment variables into the provided configuration struct.
// The default .env file is loaded once per process before the first parse;
// a missing .env file is not an error. Each unique configuration type is
// parsed at most once and served from cache afterwards.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := typeNameOf[T]()

	cacheMu.RLock()
	if cached, ok := cache[typeName]; ok {
		*v = cached.(T)
		cacheMu.RUnlock()
		return nil
	}
	cacheMu.RUnlock()

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	// Another goroutine may have parsed the same type concurrently; either
	// copy is equivalent since both come from the same environment.
	cache[typeName] = *v
	cacheMu.Unlock()

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// typeNameOf returns a string identifier for the generic type T.
func typeNameOf[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
