package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// typeCache stores one parsed value per configuration type.
type typeCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	cache = &typeCache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Variables already set in the environment are not overridden.
// With no arguments the default ".env" is loaded and a missing file is ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v. The first successful load of a
// type is cached; later calls for the same type copy the cached value.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = LoadEnv()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeOf((*T)(nil)).Elem()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cached, ok := cache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.values[key] = parsed // store a copy to avoid external modifications

	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration value.
func ResetCache() {
	cache.mu.Lock()
	clear(cache.values)
	cache.mu.Unlock()
}
